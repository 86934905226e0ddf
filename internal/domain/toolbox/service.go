package toolbox

// ToolboxService exposes the stateless field engineering calculators.
type ToolboxService interface {
	Convert(req ConvertRequest) (ConvertResponse, error)
	Interpolate(req InterpolateRequest) (InterpolateResponse, error)
	Displacer(req DisplacerRequest) (DisplacerResponse, error)
	CTL(req CTLRequest) (CTLResponse, error)
	VCF(req VCFRequest) (VCFResponse, error)
	Calibrate(req CalibrationRequest) (CalibrationResponse, error)
	// Units lists the unit names accepted by Convert per category
	Units() map[Category][]string
}
