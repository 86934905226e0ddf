package toolbox

import (
	"math"
	"slices"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/toolbox"
)

const inchToMM = 25.4

// table54Constants are the K0 and K1 coefficients per product group.
var table54Constants = map[toolbox.Product][2]float64{
	toolbox.ProductLPG:      {1144.3, 0.0},
	toolbox.ProductGasoline: {346.4228, 0.4388},
	toolbox.ProductJetFuel:  {594.5418, 0.0},
	toolbox.ProductDiesel:   {186.9696, 0.4862},
	toolbox.ProductLubeOils: {0.0, 0.6278},
}

// LinearInterpolation returns y at x on the line through (x1, y1) and (x2, y2).
func LinearInterpolation(x1, y1, x2, y2, x float64) (float64, error) {
	if x1 == x2 {
		return 0, toolbox.ErrDegenerateInterpolation
	}
	return y1 + (x-x1)*((y2-y1)/(x2-x1)), nil
}

// InsideDiameterMM converts a pipe's nominal diameter and wall thickness, both in inches,
// into its inside diameter in millimetres.
func InsideDiameterMM(nominalDiameterIn, wallThicknessIn float64) float64 {
	return nominalDiameterIn*inchToMM - 2*wallThicknessIn*inchToMM
}

// Displacer converts a displacement in mm to a percentage of the inside diameter, or a
// percentage back to a circumference length in mm.
func Displacer(nominalDiameterIn, wallThicknessIn, value float64, unit toolbox.DisplacerUnit) (float64, error) {
	inside := InsideDiameterMM(nominalDiameterIn, wallThicknessIn)
	if inside <= 0 {
		return 0, toolbox.ErrInvalidDiameter
	}
	if unit == toolbox.DisplacerMM {
		return value / inside * 100, nil
	}
	return value / 100 * inside * math.Pi, nil
}

// CPL is the pressure correction factor for a liquid.
func CPL(pressure float64) float64 {
	return 1 / (1 - 0.0000032*pressure)
}

// Table54Alpha is the thermal expansion coefficient at 15 °C for the product group.
func Table54Alpha(density15 float64, product toolbox.Product) (float64, error) {
	k, ok := table54Constants[product]
	if !ok {
		return 0, toolbox.ErrUnknownProduct
	}
	if density15 <= 0 {
		return 0, toolbox.ErrInvalidDensity
	}
	return (k[0] + k[1]*density15) / (density15 * density15), nil
}

// CTLTable54 is the temperature correction factor relative to 15 °C.
func CTLTable54(density15, temperatureC float64, product toolbox.Product) (float64, error) {
	alpha, err := Table54Alpha(density15, product)
	if err != nil {
		return 0, err
	}
	dt := temperatureC - 15
	return math.Exp(-alpha * dt * (1 + 0.8*alpha*dt)), nil
}

// VCFTable6 is the volume correction factor relative to 60 °F. With K0 and K1 both zero
// the factor is always 1.
func VCFTable6(apiGravity, temperatureF float64) float64 {
	const k0, k1 = 0.0, 0.0
	rho := 141.5 / (apiGravity + 131.5)
	alpha := k0/(rho*rho) + k1/rho
	dt := temperatureF - 60
	return 1 / (1 + alpha*dt + 0.8*alpha*alpha*dt*dt)
}

// MasterVolume is the meter's indicated volume corrected for pressure. A zero K-factor yields 0.
func MasterVolume(pulse, kFactor, cpl float64) float64 {
	if kFactor == 0 {
		return 0
	}
	return pulse / kFactor * cpl
}

// ReadingVolume scales a neck reading by the corrected/main scale ratio into cubic units.
// A zero main scale yields 0.
func ReadingVolume(reading, correctedScale, mainScale float64) float64 {
	if mainScale == 0 {
		return 0
	}
	return reading * (correctedScale / mainScale) / 1000
}

// RealVolume is the vessel's true volume: the reading plus the temperature corrected nominal.
func RealVolume(readingVolume, correctedNominal, ctl float64) float64 {
	return readingVolume + correctedNominal*ctl
}

// MeterFactor is real over master volume. A zero master volume yields 0.
func MeterFactor(realVolume, masterVolume float64) float64 {
	if masterVolume == 0 {
		return 0
	}
	return realVolume / masterVolume
}

// Repeatability is the spread of the meter factors in percent. Fewer than two runs yield 0.
func Repeatability(meterFactors []float64) float64 {
	if len(meterFactors) < 2 {
		return 0
	}
	return (slices.Max(meterFactors) - slices.Min(meterFactors)) * 100
}
