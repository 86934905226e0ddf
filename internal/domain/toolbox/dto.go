package toolbox

import "github.com/absensi-tracker/absensi-backend-go/internal/pkg/validator"

type ConvertRequest struct {
	Category Category `json:"category" validate:"required"`
	From     string   `json:"from" validate:"required"`
	To       string   `json:"to" validate:"required"`
	Value    float64  `json:"value"`
}

func (r *ConvertRequest) Validate() error {
	return validator.Struct(r)
}

type ConvertResponse struct {
	Category Category `json:"category"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Value    float64  `json:"value"`
	Result   float64  `json:"result"`
}

type InterpolateRequest struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
	X  float64 `json:"x"`
}

type InterpolateResponse struct {
	Y float64 `json:"y"`
}

type DisplacerRequest struct {
	NominalDiameter float64       `json:"nominal_diameter" validate:"gt=0"` // inch
	WallThickness   float64       `json:"wall_thickness" validate:"gte=0"`  // inch
	Value           float64       `json:"value"`
	Unit            DisplacerUnit `json:"unit" validate:"oneof=mm %"`
}

func (r *DisplacerRequest) Validate() error {
	return validator.Struct(r)
}

type DisplacerResponse struct {
	InsideDiameterMM float64 `json:"inside_diameter_mm"`
	Result           float64 `json:"result"`
	// ResultUnit is "%" for a mm input and "mm" (circumference) for a % input
	ResultUnit string `json:"result_unit"`
}

type CTLRequest struct {
	Density15   float64 `json:"density15"`   // kg/m³ at 15 °C
	Temperature float64 `json:"temperature"` // °C
	Product     Product `json:"product"`
	Pressure    float64 `json:"pressure"` // optional, for CPL
}

type CTLResponse struct {
	Alpha float64 `json:"alpha"`
	CTL   float64 `json:"ctl"`
	CPL   float64 `json:"cpl"`
}

type VCFRequest struct {
	APIGravity   float64 `json:"api_gravity"`
	TemperatureF float64 `json:"temperature_f"`
}

type VCFResponse struct {
	VCF float64 `json:"vcf"`
}

// CalibrationRun is one prover run of a meter against a calibrated vessel.
type CalibrationRun struct {
	Pulse            float64 `json:"pulse"`
	KFactor          float64 `json:"k_factor"`
	Pressure         float64 `json:"pressure"`
	Reading          float64 `json:"reading"`
	CorrectedScale   float64 `json:"corrected_scale"`
	MainScale        float64 `json:"main_scale"`
	CorrectedNominal float64 `json:"corrected_nominal"`
	Density15        float64 `json:"density15"`
	Temperature      float64 `json:"temperature"`
	Product          Product `json:"product"`
}

type CalibrationRequest struct {
	Runs []CalibrationRun `json:"runs"`
}

type CalibrationRunResult struct {
	CPL           float64 `json:"cpl"`
	CTL           float64 `json:"ctl"`
	MasterVolume  float64 `json:"master_volume"`
	ReadingVolume float64 `json:"reading_volume"`
	RealVolume    float64 `json:"real_volume"`
	MeterFactor   float64 `json:"meter_factor"`
}

type CalibrationResponse struct {
	Runs               []CalibrationRunResult `json:"runs"`
	AverageMeterFactor float64                `json:"average_meter_factor"`
	Repeatability      float64                `json:"repeatability"`
}
