package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"solareco/domain"
	"solareco/model"
)

// roundTo1Decimal rounds a float64 to 1 decimal place.
func roundTo1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// RecommendationService synthesizes one candidate panel per catalog brand,
// scores the batch with the trained model and ranks the best value picks
// for the user's budget.
type RecommendationService struct {
	predictor model.Predictor
	rand      Rand
}

// NewRecommendationService creates a RecommendationService using the given
// model and randomness source.
func NewRecommendationService(predictor model.Predictor, rnd Rand) *RecommendationService {
	return &RecommendationService{predictor: predictor, rand: rnd}
}

// Recommend returns the top panels for the budget and climate, sorted by
// value score descending. The result is always min(3, catalog size) records
// drawn from a single freshly generated candidate set.
func (s *RecommendationService) Recommend(
	input domain.RecommendationInput,
) ([]domain.DisplayRecord, error) {

	if input.Budget < MinBudget {
		return nil, eris.Wrapf(domain.ErrInvalidInput,
			"budget must be at least ₹%d", MinBudget)
	}
	profile, ok := domain.Climates[input.Climate]
	if !ok {
		return nil, eris.Wrapf(domain.ErrInvalidInput,
			"unknown climate category %q", input.Climate)
	}

	candidates := s.generateCandidates(profile)
	s.assignPricing(input.Budget, candidates)

	if err := s.scoreCandidates(candidates); err != nil {
		return nil, err
	}

	ranked, err := rankCandidates(candidates)
	if err != nil {
		return nil, err
	}

	zap.L().Info("recommendation computed",
		zap.Int("budget", input.Budget),
		zap.String("climate", input.Climate),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(ranked)),
	)
	return formatRecords(ranked, profile), nil
}

// generateCandidates synthesizes one candidate per brand, sampling
// environmental and wear attributes from the climate profile.
func (s *RecommendationService) generateCandidates(profile domain.ClimateProfile) []domain.CandidatePanel {
	candidates := make([]domain.CandidatePanel, 0, len(domain.Brands))
	for _, brand := range domain.Brands {
		candidates = append(candidates, domain.CandidatePanel{
			Brand:             brand,
			Temperature:       profile.TempMin + s.rand.IntN(profile.TempMax-profile.TempMin),
			Humidity:          profile.HumidityMin + s.rand.IntN(profile.HumidityMax-profile.HumidityMin),
			DustLevel:         s.sampleDustLevel(),
			DaysSinceCleaning: MinDaysSinceCleaning + s.rand.IntN(MaxDaysSinceCleaning),
			PanelAgeYears:     0, // new-purchase recommendation
		})
	}
	return candidates
}

func (s *RecommendationService) sampleDustLevel() string {
	r := s.rand.Float64()
	switch {
	case r < dustLowProbability:
		return domain.DustLow
	case r < dustLowProbability+dustMediumProbability:
		return domain.DustMedium
	default:
		return domain.DustHigh
	}
}

// assignPricing splits the budget across candidates proportionally to each
// brand's price factor and perturbs rated power with bounded jitter. Price
// is deterministic given the budget; power is not.
func (s *RecommendationService) assignPricing(budget int, candidates []domain.CandidatePanel) {
	var totalFactor float64
	for _, brand := range domain.Brands {
		totalFactor += brand.PriceFactor
	}
	perUnit := float64(budget) / totalFactor

	for i := range candidates {
		candidates[i].Price = int(perUnit * candidates[i].Brand.PriceFactor)
		candidates[i].Power = candidates[i].Brand.PowerBase - PowerJitterWatts + s.rand.IntN(2*PowerJitterWatts)
	}
}

// scoreCandidates runs one batched model prediction over the candidate set
// and applies each brand's efficiency boost.
func (s *RecommendationService) scoreCandidates(candidates []domain.CandidatePanel) error {
	obs := make([]model.Observation, len(candidates))
	for i, c := range candidates {
		obs[i] = model.Observation{
			Temperature:       float64(c.Temperature),
			Humidity:          float64(c.Humidity),
			DustLevel:         c.DustLevel,
			DaysSinceCleaning: float64(c.DaysSinceCleaning),
			PanelAgeYears:     float64(c.PanelAgeYears),
		}
	}

	matrix := model.BuildMatrix(obs, s.predictor.FeatureColumns())
	predictions, err := s.predictor.Predict(matrix)
	if err != nil {
		return eris.Wrap(domain.ErrScoring, err.Error())
	}
	if len(predictions) != len(candidates) {
		return eris.Wrapf(domain.ErrScoring,
			"model returned %d predictions for %d candidates", len(predictions), len(candidates))
	}

	for i := range candidates {
		candidates[i].BaseEfficiency = predictions[i]
		candidates[i].Efficiency = roundTo1Decimal(
			predictions[i] + candidates[i].Brand.EfficiencyBoost*100)
	}
	return nil
}

// rankCandidates computes value scores and returns the top candidates in
// descending order. Ties keep catalog order (stable sort). A zero price
// indicates a prior computation fault and aborts the request.
func rankCandidates(candidates []domain.CandidatePanel) ([]domain.CandidatePanel, error) {
	for i := range candidates {
		if candidates[i].Price <= 0 {
			return nil, eris.Wrapf(domain.ErrScoring,
				"candidate %q has degenerate price %d", candidates[i].Brand.Name, candidates[i].Price)
		}
		candidates[i].ValueScore = candidates[i].Efficiency / (float64(candidates[i].Price) / ValueScoreUnit)
	}

	ranked := make([]domain.CandidatePanel, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ValueScore > ranked[j].ValueScore
	})

	if len(ranked) > TopRecommendations {
		ranked = ranked[:TopRecommendations]
	}
	return ranked, nil
}

func formatRecords(ranked []domain.CandidatePanel, profile domain.ClimateProfile) []domain.DisplayRecord {
	records := make([]domain.DisplayRecord, 0, len(ranked))
	for _, c := range ranked {
		records = append(records, domain.DisplayRecord{
			Brand:      c.Brand.Name,
			Type:       domain.PanelType,
			Price:      c.Price,
			Efficiency: c.Efficiency,
			Power:      fmt.Sprintf("%dW", c.Power),
			Lifespan:   fmt.Sprintf("%d years", c.Brand.LifespanYears),
			Warranty:   fmt.Sprintf("%d years", c.Brand.WarrantyYears),
			Climate:    profile.Descriptor,
		})
	}
	return records
}
