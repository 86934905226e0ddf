package toolbox

import (
	"math"
	"testing"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/toolbox"
	"github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	svc := NewToolboxService()

	tests := []struct {
		name     string
		category toolbox.Category
		from, to string
		value    float64
		want     float64
	}{
		{"inch to mm", toolbox.CategoryLength, "inch", "mm", 1, 25.4},
		{"same unit", toolbox.CategoryVolume, "bbl", "bbl", 12.5, 12.5},
		{"bbl to liter", toolbox.CategoryVolume, "bbl", "L", 1, 158.987},
		{"ascii cubic meter", toolbox.CategoryVolume, "m3", "L", 2, 2000},
		{"bar to psi", toolbox.CategoryPressure, "bar", "psi", 1, 100000 / 6894.76},
		{"celsius to fahrenheit", toolbox.CategoryTemperature, "°C", "°F", 100, 212},
		{"fahrenheit to kelvin", toolbox.CategoryTemperature, "F", "K", 32, 273.15},
		{"api to g/cm3", toolbox.CategoryDensity, "API", "g/cm³", 10, 1},
		{"kg/m3 to api", toolbox.CategoryDensity, "kg/m3", "API", 999.016, 10},
		{"m3/h to L/min", toolbox.CategoryFlowrate, "m³/h", "L/min", 6, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Convert(toolbox.ConvertRequest{Category: tt.category, From: tt.from, To: tt.to, Value: tt.value})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, resp.Result, 1e-6)
			assert.Equal(t, tt.value, resp.Value)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	svc := NewToolboxService()

	_, err := svc.Convert(toolbox.ConvertRequest{Category: "speed", From: "a", To: "b", Value: 1})
	assert.ErrorIs(t, err, toolbox.ErrUnknownCategory)

	_, err = svc.Convert(toolbox.ConvertRequest{Category: toolbox.CategoryLength, From: "m", To: "furlong", Value: 1})
	assert.ErrorIs(t, err, toolbox.ErrUnknownUnit)

	_, err = svc.Convert(toolbox.ConvertRequest{Category: toolbox.CategoryTemperature, From: "°C", To: "R", Value: 1})
	assert.ErrorIs(t, err, toolbox.ErrUnknownUnit)

	_, err = svc.Convert(toolbox.ConvertRequest{Category: toolbox.CategoryLength, From: "m", Value: 1})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "to")
}

func TestConvert_APIGravityDomain(t *testing.T) {
	svc := NewToolboxService()

	for _, api := range []float64{-131.5, -140, -1000} {
		for _, to := range []string{"kg/m³", "g/cm³", "lb/ft³"} {
			_, err := svc.Convert(toolbox.ConvertRequest{Category: toolbox.CategoryDensity, From: "API", To: to, Value: api})
			assert.ErrorIs(t, err, toolbox.ErrInvalidDensity, "API %v to %s", api, to)
		}
	}

	// just above the pole is still a valid, very dense liquid
	resp, err := svc.Convert(toolbox.ConvertRequest{Category: toolbox.CategoryDensity, From: "API", To: "g/cm³", Value: -130})
	require.NoError(t, err)
	assert.InDelta(t, 141.5/1.5, resp.Result, 1e-9)
}

func TestConvert_NonFiniteResult(t *testing.T) {
	svc := NewToolboxService()

	_, err := svc.Convert(toolbox.ConvertRequest{Category: toolbox.CategoryLength, From: "mile", To: "mm", Value: math.MaxFloat64})
	assert.ErrorIs(t, err, toolbox.ErrResultOutOfRange)
}

func TestInterpolate(t *testing.T) {
	svc := NewToolboxService()

	resp, err := svc.Interpolate(toolbox.InterpolateRequest{X1: 0, Y1: 10, X2: 10, Y2: 30, X: 2.5})
	require.NoError(t, err)
	assert.InDelta(t, 15, resp.Y, 1e-9)

	_, err = svc.Interpolate(toolbox.InterpolateRequest{X1: 4, Y1: 1, X2: 4, Y2: 2, X: 4})
	assert.ErrorIs(t, err, toolbox.ErrDegenerateInterpolation)
}

func TestDisplacer(t *testing.T) {
	svc := NewToolboxService()

	// 4 inch nominal with 0.237 inch wall is 89.5604 mm inside
	resp, err := svc.Displacer(toolbox.DisplacerRequest{NominalDiameter: 4, WallThickness: 0.237, Value: 8.95604, Unit: toolbox.DisplacerMM})
	require.NoError(t, err)
	assert.InDelta(t, 89.5604, resp.InsideDiameterMM, 1e-9)
	assert.InDelta(t, 10, resp.Result, 1e-9)
	assert.Equal(t, "%", resp.ResultUnit)

	resp, err = svc.Displacer(toolbox.DisplacerRequest{NominalDiameter: 4, WallThickness: 0.237, Value: 10, Unit: toolbox.DisplacerPercent})
	require.NoError(t, err)
	assert.InDelta(t, 8.95604*math.Pi, resp.Result, 1e-9)
	assert.Equal(t, "mm", resp.ResultUnit)

	_, err = svc.Displacer(toolbox.DisplacerRequest{NominalDiameter: 1, WallThickness: 0.5, Value: 1, Unit: toolbox.DisplacerMM})
	assert.ErrorIs(t, err, toolbox.ErrInvalidDiameter)
}

func TestCTL(t *testing.T) {
	svc := NewToolboxService()

	resp, err := svc.CTL(toolbox.CTLRequest{Density15: 840, Temperature: 15, Product: toolbox.ProductDiesel})
	require.NoError(t, err)
	assert.InDelta(t, 1, resp.CTL, 1e-12)
	assert.InDelta(t, 1, resp.CPL, 1e-12)
	assert.InDelta(t, (186.9696+0.4862*840)/(840*840), resp.Alpha, 1e-12)

	resp, err = svc.CTL(toolbox.CTLRequest{Density15: 840, Temperature: 30, Product: toolbox.ProductDiesel, Pressure: 10})
	require.NoError(t, err)
	assert.Less(t, resp.CTL, 1.0)
	assert.Greater(t, resp.CPL, 1.0)

	_, err = svc.CTL(toolbox.CTLRequest{Density15: 840, Temperature: 30, Product: "Kerosene"})
	assert.ErrorIs(t, err, toolbox.ErrUnknownProduct)

	_, err = svc.CTL(toolbox.CTLRequest{Density15: 0, Temperature: 30, Product: toolbox.ProductLPG})
	assert.ErrorIs(t, err, toolbox.ErrInvalidDensity)
}

func TestVCF_IsIdentity(t *testing.T) {
	resp, err := NewToolboxService().VCF(toolbox.VCFRequest{APIGravity: 35, TemperatureF: 90})
	require.NoError(t, err)
	assert.Equal(t, 1.0, resp.VCF)
}

func TestCalibrate(t *testing.T) {
	svc := NewToolboxService()

	run := toolbox.CalibrationRun{
		Pulse:            10000,
		KFactor:          10,
		Reading:          500,
		CorrectedScale:   1,
		MainScale:        1,
		CorrectedNominal: 999.5,
		Density15:        840,
		Temperature:      15,
		Product:          toolbox.ProductDiesel,
	}
	second := run
	second.Reading = 520

	resp, err := svc.Calibrate(toolbox.CalibrationRequest{Runs: []toolbox.CalibrationRun{run, second}})
	require.NoError(t, err)
	require.Len(t, resp.Runs, 2)

	assert.InDelta(t, 1000, resp.Runs[0].MasterVolume, 1e-9)
	assert.InDelta(t, 0.5, resp.Runs[0].ReadingVolume, 1e-9)
	assert.InDelta(t, 1000, resp.Runs[0].RealVolume, 1e-9)
	assert.InDelta(t, 1.0, resp.Runs[0].MeterFactor, 1e-9)
	assert.InDelta(t, 1.00002, resp.Runs[1].MeterFactor, 1e-9)
	assert.InDelta(t, 1.00001, resp.AverageMeterFactor, 1e-9)
	assert.InDelta(t, 0.002, resp.Repeatability, 1e-9)
}

func TestCalibrate_ZeroGuards(t *testing.T) {
	resp, err := NewToolboxService().Calibrate(toolbox.CalibrationRequest{Runs: []toolbox.CalibrationRun{{
		Pulse: 100, Reading: 10, Density15: 840, Temperature: 20, Product: toolbox.ProductGasoline,
	}}})
	require.NoError(t, err)
	assert.Zero(t, resp.Runs[0].MasterVolume)
	assert.Zero(t, resp.Runs[0].ReadingVolume)
	assert.Zero(t, resp.Runs[0].MeterFactor)
	assert.Zero(t, resp.Repeatability)

	_, err = NewToolboxService().Calibrate(toolbox.CalibrationRequest{})
	assert.ErrorIs(t, err, toolbox.ErrNoCalibrationRuns)
}

func TestUnits_ReturnsCopies(t *testing.T) {
	svc := NewToolboxService()
	units := svc.Units()
	assert.Contains(t, units[toolbox.CategoryDensity], "API")
	assert.Len(t, units, 7)

	units[toolbox.CategoryLength][0] = "changed"
	assert.Equal(t, "mm", svc.Units()[toolbox.CategoryLength][0])
}
