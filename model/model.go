package model

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"solareco/domain"
)

// Feature column names the trained regressor was fitted on. The dust level
// one-hot columns follow the Dust_Level_<category> convention.
const (
	ColTemperature  = "Temperature (°C)"
	ColHumidity     = "Humidity (%)"
	ColDaysCleaning = "Days_Since_Cleaning"
	ColPanelAge     = "Panel_Age (years)"
	ColTempHumidity = "Temp_Humidity"

	dustColPrefix = "Dust_Level_"
)

// Predictor is the opaque trained efficiency model: a feature matrix whose
// columns match FeatureColumns yields one predicted efficiency percentage
// per row. Implementations must be safe for concurrent use.
type Predictor interface {
	FeatureColumns() []string
	Predict(matrix [][]float64) ([]float64, error)
}

// LinearModel is a fitted linear regressor loaded from a JSON artifact.
// Read-only after load.
type LinearModel struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
	Columns      []string           `json:"feature_columns"`
}

// Load reads a model artifact from path.
func Load(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "model: read artifact")
	}
	var m LinearModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, eris.Wrap(err, "model: decode artifact")
	}
	if len(m.Columns) == 0 {
		return nil, eris.New("model: artifact declares no feature columns")
	}
	for _, col := range m.Columns {
		if _, ok := m.Coefficients[col]; !ok {
			return nil, eris.Errorf("model: artifact missing coefficient for %q", col)
		}
	}
	return &m, nil
}

// FeatureColumns returns the ordered schema the model expects.
func (m *LinearModel) FeatureColumns() []string {
	return m.Columns
}

// Predict computes one prediction per row. Every row must have exactly
// len(FeatureColumns()) values in schema order.
func (m *LinearModel) Predict(matrix [][]float64) ([]float64, error) {
	out := make([]float64, len(matrix))
	for i, row := range matrix {
		if len(row) != len(m.Columns) {
			return nil, eris.Wrapf(domain.ErrScoring,
				"model: row %d has %d features, schema expects %d", i, len(row), len(m.Columns))
		}
		v := m.Intercept
		for j, col := range m.Columns {
			v += m.Coefficients[col] * row[j]
		}
		out[i] = v
	}
	return out, nil
}
