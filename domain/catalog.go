package domain

// Brands is the fixed panel catalog. Order matters: the ranking selector
// breaks value-score ties in favor of the first-listed brand.
var Brands = []BrandSpec{
	{Name: "Waaree", EfficiencyBoost: 0.05, PriceFactor: 1.2, PowerBase: 300, LifespanYears: 26, WarrantyYears: 18},
	{Name: "Tata Power", EfficiencyBoost: 0.03, PriceFactor: 1.0, PowerBase: 330, LifespanYears: 25, WarrantyYears: 11},
	{Name: "Luminous", EfficiencyBoost: 0.02, PriceFactor: 0.85, PowerBase: 350, LifespanYears: 24, WarrantyYears: 10},
	{Name: "Vikram Solar", EfficiencyBoost: 0.04, PriceFactor: 1.1, PowerBase: 320, LifespanYears: 25, WarrantyYears: 12},
	{Name: "Adani Solar", EfficiencyBoost: 0.03, PriceFactor: 1.05, PowerBase: 340, LifespanYears: 25, WarrantyYears: 15},
}

// Climates maps each supported climate category to its profile.
var Climates = map[string]ClimateProfile{
	"Tropical":  {Name: "Tropical", TempMin: 28, TempMax: 38, HumidityMin: 60, HumidityMax: 90, Descriptor: "Hot"},
	"Dry":       {Name: "Dry", TempMin: 30, TempMax: 45, HumidityMin: 20, HumidityMax: 50, Descriptor: "Hot"},
	"Temperate": {Name: "Temperate", TempMin: 18, TempMax: 28, HumidityMin: 40, HumidityMax: 70, Descriptor: "Moderate"},
}

// ValidDustLevel reports whether s is a known dust category.
func ValidDustLevel(s string) bool {
	switch s {
	case DustLow, DustMedium, DustHigh:
		return true
	}
	return false
}
