package http

import (
	"net/http"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/toolbox"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
)

type ToolboxHandler interface {
	Units(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
	Interpolate(w http.ResponseWriter, r *http.Request)
	Displacer(w http.ResponseWriter, r *http.Request)
	CTL(w http.ResponseWriter, r *http.Request)
	VCF(w http.ResponseWriter, r *http.Request)
	Calibration(w http.ResponseWriter, r *http.Request)
}

type toolboxHandlerImpl struct {
	toolboxService toolbox.ToolboxService
}

func NewToolboxHandler(toolboxService toolbox.ToolboxService) ToolboxHandler {
	return &toolboxHandlerImpl{toolboxService: toolboxService}
}

// calculate decodes Req, runs fn and writes the result.
func calculate[Req any, Resp any](w http.ResponseWriter, r *http.Request, fn func(Req) (Resp, error)) {
	var req Req
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := fn(req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Units handles GET /toolbox/units
func (h *toolboxHandlerImpl) Units(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.toolboxService.Units())
}

// Convert handles POST /toolbox/convert
func (h *toolboxHandlerImpl) Convert(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.toolboxService.Convert)
}

// Interpolate handles POST /toolbox/interpolate
func (h *toolboxHandlerImpl) Interpolate(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.toolboxService.Interpolate)
}

// Displacer handles POST /toolbox/displacer
func (h *toolboxHandlerImpl) Displacer(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.toolboxService.Displacer)
}

// CTL handles POST /toolbox/ctl
func (h *toolboxHandlerImpl) CTL(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.toolboxService.CTL)
}

// VCF handles POST /toolbox/vcf
func (h *toolboxHandlerImpl) VCF(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.toolboxService.VCF)
}

// Calibration handles POST /toolbox/calibration
func (h *toolboxHandlerImpl) Calibration(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.toolboxService.Calibrate)
}
