package service

import "time"

const (
	// MinBudget is the lowest accepted recommendation budget, in rupees.
	MinBudget = 10000

	// Days-since-cleaning sampling range for synthesized candidates.
	MinDaysSinceCleaning = 1
	MaxDaysSinceCleaning = 30

	// PowerJitterWatts bounds the rated-power perturbation: [-30, +30).
	PowerJitterWatts = 30

	// ValueScoreUnit expresses price in units of ₹10,000 for ranking.
	ValueScoreUnit = 10000.0

	// TopRecommendations is how many ranked panels a request returns.
	TopRecommendations = 3

	// Dust level sampling distribution for new candidates.
	dustLowProbability    = 0.4
	dustMediumProbability = 0.4

	// OTPLength is the number of digits in a verification code.
	OTPLength = 6

	// OTPTTL bounds the life of a verification challenge.
	OTPTTL = 600 * time.Second
)
