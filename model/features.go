package model

import "strings"

// Observation holds the raw attributes of one panel before encoding.
type Observation struct {
	Temperature       float64
	Humidity          float64
	DustLevel         string
	DaysSinceCleaning float64
	PanelAgeYears     float64
}

// BuildMatrix encodes observations into the exact column set and order the
// schema declares. The dust level is one-hot encoded; schema columns with no
// source value are padded with 0, encoded values the schema does not name
// are dropped, and the Temp_Humidity interaction is computed when the schema
// asks for it. The output shape therefore never depends on which dust
// categories happened to appear in the batch.
func BuildMatrix(obs []Observation, schema []string) [][]float64 {
	matrix := make([][]float64, len(obs))
	for i, o := range obs {
		row := make([]float64, len(schema))
		for j, col := range schema {
			row[j] = featureValue(o, col)
		}
		matrix[i] = row
	}
	return matrix
}

func featureValue(o Observation, col string) float64 {
	switch col {
	case ColTemperature:
		return o.Temperature
	case ColHumidity:
		return o.Humidity
	case ColDaysCleaning:
		return o.DaysSinceCleaning
	case ColPanelAge:
		return o.PanelAgeYears
	case ColTempHumidity:
		return o.Temperature * o.Humidity / 100
	}
	if level, ok := strings.CutPrefix(col, dustColPrefix); ok {
		if level == o.DustLevel {
			return 1
		}
		return 0
	}
	// Unknown schema column: pad with zero rather than fail, matching the
	// model's fixed input contract.
	return 0
}
