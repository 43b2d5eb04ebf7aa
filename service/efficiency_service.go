package service

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"solareco/domain"
	"solareco/model"
)

// EfficiencyService estimates the measured efficiency of one physical panel
// from user-supplied attributes. No brand boost applies here: the model
// output is the answer.
type EfficiencyService struct {
	predictor model.Predictor
}

// NewEfficiencyService creates an EfficiencyService over the given model.
func NewEfficiencyService(predictor model.Predictor) *EfficiencyService {
	return &EfficiencyService{predictor: predictor}
}

// Estimate returns the raw model prediction for the observed attributes,
// rounded to 2 decimals.
func (s *EfficiencyService) Estimate(input domain.EfficiencyInput) (float64, error) {
	if !domain.ValidDustLevel(input.DustLevel) {
		return 0, eris.Wrapf(domain.ErrInvalidInput, "unknown dust level %q", input.DustLevel)
	}
	if input.PanelAgeYears < 0 {
		return 0, eris.Wrap(domain.ErrInvalidInput, "panel age must not be negative")
	}
	if input.DaysSinceCleaning < 0 {
		return 0, eris.Wrap(domain.ErrInvalidInput, "days since cleaning must not be negative")
	}
	if input.Humidity < 0 || input.Humidity > 100 {
		return 0, eris.Wrap(domain.ErrInvalidInput, "humidity must be between 0 and 100")
	}

	obs := []model.Observation{{
		Temperature:       float64(input.Temperature),
		Humidity:          float64(input.Humidity),
		DustLevel:         input.DustLevel,
		DaysSinceCleaning: float64(input.DaysSinceCleaning),
		PanelAgeYears:     float64(input.PanelAgeYears),
	}}

	matrix := model.BuildMatrix(obs, s.predictor.FeatureColumns())
	predictions, err := s.predictor.Predict(matrix)
	if err != nil {
		return 0, eris.Wrap(domain.ErrScoring, err.Error())
	}
	if len(predictions) != 1 {
		return 0, eris.Wrapf(domain.ErrScoring,
			"model returned %d predictions for a single observation", len(predictions))
	}

	estimate := roundTo2Decimals(predictions[0])
	zap.L().Info("efficiency estimated",
		zap.String("dust", input.DustLevel),
		zap.Int("age", input.PanelAgeYears),
		zap.Float64("estimate", estimate),
	)
	return estimate, nil
}
