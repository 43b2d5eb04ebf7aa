package domain

// Dust level categories as observed on a panel surface.
const (
	DustLow    = "Low"
	DustMedium = "Medium"
	DustHigh   = "High"
)

// PanelType is the only construction type the catalog carries today.
const PanelType = "Polycrystalline"

// ClimateProfile maps a climate category to its environmental sampling
// ranges. Temperature and humidity ranges are half-open [Min, Max).
type ClimateProfile struct {
	Name        string
	TempMin     int
	TempMax     int
	HumidityMin int
	HumidityMax int
	Descriptor  string // display label, e.g. "Hot"
}

// BrandSpec describes one panel brand's commercial characteristics.
type BrandSpec struct {
	Name            string
	EfficiencyBoost float64 // fraction, applied as boost*100 percentage points
	PriceFactor     float64
	PowerBase       int // rated power, watts
	LifespanYears   int
	WarrantyYears   int
}

// CandidatePanel is one synthesized panel instance scored during a single
// recommendation request. Never persisted.
type CandidatePanel struct {
	Brand             BrandSpec
	Temperature       int
	Humidity          int
	DustLevel         string
	DaysSinceCleaning int
	PanelAgeYears     int
	BaseEfficiency    float64 // model output, percent
	Efficiency        float64 // base + brand boost, percent
	Price             int
	Power             int
	ValueScore        float64
}

// RecommendationInput is the payload for a recommendation request.
type RecommendationInput struct {
	Budget  int    `json:"budget"`
	Climate string `json:"climate"`
}

// DisplayRecord is one ranked panel formatted for presentation.
type DisplayRecord struct {
	Brand      string  `json:"brand"`
	Type       string  `json:"type"`
	Price      int     `json:"price"`
	Efficiency float64 `json:"efficiency"`
	Power      string  `json:"power"`
	Lifespan   string  `json:"lifespan"`
	Warranty   string  `json:"warranty"`
	Climate    string  `json:"climate"`
}

// EfficiencyInput holds the observed attributes of one physical panel.
type EfficiencyInput struct {
	DustLevel         string `json:"dust"`
	PanelAgeYears     int    `json:"age"`
	DaysSinceCleaning int    `json:"cleaned"`
	Temperature       int    `json:"temp"`
	Humidity          int    `json:"humid"`
}
