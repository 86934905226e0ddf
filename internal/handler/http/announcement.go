package http

import (
	"net/http"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/announcement"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Acknowledge(w http.ResponseWriter, r *http.Request)
	ReadStatus(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{announcementService: announcementService}
}

// List handles GET /announcements
func (h *announcementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.announcementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /announcements
func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateAnnouncementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", result)
}

// Delete handles DELETE /announcements/{id}
func (h *announcementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.announcementService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}

// Acknowledge handles POST /announcements/{id}/acknowledge
func (h *announcementHandlerImpl) Acknowledge(w http.ResponseWriter, r *http.Request) {
	var req announcement.AcknowledgeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.announcementService.Acknowledge(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement acknowledged", result)
}

// ReadStatus handles GET /announcements/{id}/read-status
func (h *announcementHandlerImpl) ReadStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.announcementService.ReadStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
