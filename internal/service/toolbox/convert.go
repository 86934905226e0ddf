package toolbox

import (
	"math"
	"strings"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/toolbox"
)

const (
	waterDensityKgM3  = 999.016 // water at 60 °F
	waterDensityLbFt3 = 62.428
	unitAPI           = "API"
)

// conversionRates holds the factor of each unit to its category's base unit
// (meter, liter, gram, liter per minute, pascal, kg/m³).
var conversionRates = map[toolbox.Category]map[string]float64{
	toolbox.CategoryLength: {
		"mm": 0.001, "cm": 0.01, "m": 1, "inch": 0.0254, "ft": 0.3048, "yard": 0.9144, "mile": 1609.344,
	},
	toolbox.CategoryVolume: {
		"mL": 0.001, "L": 1, "gal (US)": 3.78541, "gal": 3.78541, "bbl": 158.987, "ft³": 28.3168, "m³": 1000, "inch³": 0.0163871,
	},
	toolbox.CategoryWeight: {
		"mg": 0.001, "g": 1, "kg": 1000, "oz": 28.3495, "lb": 453.592, "ton": 907185,
	},
	toolbox.CategoryFlowrate: {
		"mL/min": 0.001, "L/min": 1, "L/h": 1.0 / 60, "gal/min": 3.78541, "bbl/day": 158.987 / 1440, "m³/h": 1000.0 / 60,
	},
	toolbox.CategoryPressure: {
		"Pa": 1, "kPa": 1000, "bar": 100000, "psi": 6894.76, "atm": 101325,
	},
	toolbox.CategoryDensity: {
		"kg/m³": 1, "g/cm³": 1000, "lb/ft³": 16.0185,
	},
}

var temperatureUnits = []string{"°C", "°F", "K"}

// unitOrder is the display order returned by Units.
var unitOrder = map[toolbox.Category][]string{
	toolbox.CategoryLength:      {"mm", "cm", "m", "inch", "ft", "yard", "mile"},
	toolbox.CategoryVolume:      {"mL", "L", "gal (US)", "gal", "bbl", "ft³", "m³", "inch³"},
	toolbox.CategoryWeight:      {"mg", "g", "kg", "oz", "lb", "ton"},
	toolbox.CategoryFlowrate:    {"mL/min", "L/min", "L/h", "gal/min", "bbl/day", "m³/h"},
	toolbox.CategoryTemperature: temperatureUnits,
	toolbox.CategoryPressure:    {"Pa", "kPa", "bar", "psi", "atm"},
	toolbox.CategoryDensity:     {"kg/m³", "g/cm³", "lb/ft³", unitAPI},
}

// normalizeUnit accepts ASCII spellings such as "m3", "ft3" or "C" for the canonical names.
func normalizeUnit(unit string) string {
	u := strings.TrimSpace(unit)
	switch u {
	case "C", "degC":
		return "°C"
	case "F", "degF":
		return "°F"
	}
	u = strings.ReplaceAll(u, "3", "³")
	return u
}

// convert rejects non-finite results so callers never receive Inf or NaN.
func convert(category toolbox.Category, from, to string, value float64) (float64, error) {
	result, err := convertUnits(category, from, to, value)
	if err != nil {
		return 0, err
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, toolbox.ErrResultOutOfRange
	}
	return result, nil
}

func convertUnits(category toolbox.Category, from, to string, value float64) (float64, error) {
	from, to = normalizeUnit(from), normalizeUnit(to)

	if category == toolbox.CategoryTemperature {
		return convertTemperature(from, to, value)
	}

	if category == toolbox.CategoryDensity && (from == unitAPI || to == unitAPI) {
		return convertAPIGravity(from, to, value)
	}

	rates, ok := conversionRates[category]
	if !ok {
		return 0, toolbox.ErrUnknownCategory
	}
	fromRate, ok := rates[from]
	if !ok {
		return 0, toolbox.ErrUnknownUnit
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, toolbox.ErrUnknownUnit
	}
	if from == to {
		return value, nil
	}

	return value * fromRate / toRate, nil
}

func convertTemperature(from, to string, value float64) (float64, error) {
	var celsius float64
	switch from {
	case "°C":
		celsius = value
	case "°F":
		celsius = (value - 32) * 5 / 9
	case "K":
		celsius = value - 273.15
	default:
		return 0, toolbox.ErrUnknownUnit
	}

	switch to {
	case "°C":
		return celsius, nil
	case "°F":
		return celsius*9/5 + 32, nil
	case "K":
		return celsius + 273.15, nil
	default:
		return 0, toolbox.ErrUnknownUnit
	}
}

// convertAPIGravity goes through specific gravity: SG = 141.5 / (API + 131.5).
func convertAPIGravity(from, to string, value float64) (float64, error) {
	if from == unitAPI && to == unitAPI {
		return value, nil
	}

	if from == unitAPI {
		// SG has a pole at -131.5 and turns negative below it
		if value <= -131.5 {
			return 0, toolbox.ErrInvalidDensity
		}
		sg := 141.5 / (value + 131.5)
		switch to {
		case "kg/m³":
			return sg * waterDensityKgM3, nil
		case "g/cm³":
			return sg, nil
		case "lb/ft³":
			return sg * waterDensityLbFt3, nil
		}
		return 0, toolbox.ErrUnknownUnit
	}

	var sg float64
	switch from {
	case "kg/m³":
		sg = value / waterDensityKgM3
	case "g/cm³":
		sg = value
	case "lb/ft³":
		sg = value / waterDensityLbFt3
	default:
		return 0, toolbox.ErrUnknownUnit
	}
	if sg <= 0 {
		return 0, toolbox.ErrInvalidDensity
	}
	return 141.5/sg - 131.5, nil
}
