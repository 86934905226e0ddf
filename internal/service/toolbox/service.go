package toolbox

import (
	"github.com/absensi-tracker/absensi-backend-go/internal/domain/toolbox"
)

type ToolboxServiceImpl struct{}

func NewToolboxService() toolbox.ToolboxService {
	return &ToolboxServiceImpl{}
}

// Convert implements toolbox.ToolboxService.
func (s *ToolboxServiceImpl) Convert(req toolbox.ConvertRequest) (toolbox.ConvertResponse, error) {
	if err := req.Validate(); err != nil {
		return toolbox.ConvertResponse{}, err
	}

	result, err := convert(req.Category, req.From, req.To, req.Value)
	if err != nil {
		return toolbox.ConvertResponse{}, err
	}

	return toolbox.ConvertResponse{
		Category: req.Category,
		From:     req.From,
		To:       req.To,
		Value:    req.Value,
		Result:   result,
	}, nil
}

// Interpolate implements toolbox.ToolboxService.
func (s *ToolboxServiceImpl) Interpolate(req toolbox.InterpolateRequest) (toolbox.InterpolateResponse, error) {
	y, err := LinearInterpolation(req.X1, req.Y1, req.X2, req.Y2, req.X)
	if err != nil {
		return toolbox.InterpolateResponse{}, err
	}
	return toolbox.InterpolateResponse{Y: y}, nil
}

// Displacer implements toolbox.ToolboxService.
func (s *ToolboxServiceImpl) Displacer(req toolbox.DisplacerRequest) (toolbox.DisplacerResponse, error) {
	if err := req.Validate(); err != nil {
		return toolbox.DisplacerResponse{}, err
	}

	result, err := Displacer(req.NominalDiameter, req.WallThickness, req.Value, req.Unit)
	if err != nil {
		return toolbox.DisplacerResponse{}, err
	}

	resultUnit := "mm"
	if req.Unit == toolbox.DisplacerMM {
		resultUnit = "%"
	}
	return toolbox.DisplacerResponse{
		InsideDiameterMM: InsideDiameterMM(req.NominalDiameter, req.WallThickness),
		Result:           result,
		ResultUnit:       resultUnit,
	}, nil
}

// CTL implements toolbox.ToolboxService.
func (s *ToolboxServiceImpl) CTL(req toolbox.CTLRequest) (toolbox.CTLResponse, error) {
	alpha, err := Table54Alpha(req.Density15, req.Product)
	if err != nil {
		return toolbox.CTLResponse{}, err
	}
	ctl, err := CTLTable54(req.Density15, req.Temperature, req.Product)
	if err != nil {
		return toolbox.CTLResponse{}, err
	}
	return toolbox.CTLResponse{
		Alpha: alpha,
		CTL:   ctl,
		CPL:   CPL(req.Pressure),
	}, nil
}

// VCF implements toolbox.ToolboxService.
func (s *ToolboxServiceImpl) VCF(req toolbox.VCFRequest) (toolbox.VCFResponse, error) {
	return toolbox.VCFResponse{VCF: VCFTable6(req.APIGravity, req.TemperatureF)}, nil
}

// Calibrate implements toolbox.ToolboxService.
func (s *ToolboxServiceImpl) Calibrate(req toolbox.CalibrationRequest) (toolbox.CalibrationResponse, error) {
	if len(req.Runs) == 0 {
		return toolbox.CalibrationResponse{}, toolbox.ErrNoCalibrationRuns
	}

	resp := toolbox.CalibrationResponse{Runs: make([]toolbox.CalibrationRunResult, 0, len(req.Runs))}
	factors := make([]float64, 0, len(req.Runs))
	sum := 0.0

	for _, run := range req.Runs {
		ctl, err := CTLTable54(run.Density15, run.Temperature, run.Product)
		if err != nil {
			return toolbox.CalibrationResponse{}, err
		}
		cpl := CPL(run.Pressure)
		master := MasterVolume(run.Pulse, run.KFactor, cpl)
		reading := ReadingVolume(run.Reading, run.CorrectedScale, run.MainScale)
		realVolume := RealVolume(reading, run.CorrectedNominal, ctl)
		mf := MeterFactor(realVolume, master)

		resp.Runs = append(resp.Runs, toolbox.CalibrationRunResult{
			CPL:           cpl,
			CTL:           ctl,
			MasterVolume:  master,
			ReadingVolume: reading,
			RealVolume:    realVolume,
			MeterFactor:   mf,
		})
		factors = append(factors, mf)
		sum += mf
	}

	resp.AverageMeterFactor = sum / float64(len(factors))
	resp.Repeatability = Repeatability(factors)
	return resp, nil
}

// Units implements toolbox.ToolboxService.
func (s *ToolboxServiceImpl) Units() map[toolbox.Category][]string {
	out := make(map[toolbox.Category][]string, len(unitOrder))
	for c, units := range unitOrder {
		out[c] = append([]string(nil), units...)
	}
	return out
}
