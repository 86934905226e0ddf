package http

import (
	"net/http"

	"github.com/absensi-tracker/absensi-backend-go/internal/domain/note"
	"github.com/absensi-tracker/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NoteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type noteHandlerImpl struct {
	noteService note.NoteService
}

func NewNoteHandler(noteService note.NoteService) NoteHandler {
	return &noteHandlerImpl{noteService: noteService}
}

func (h *noteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.noteService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *noteHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.noteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *noteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req note.CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.noteService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Note created", result)
}

func (h *noteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req note.UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.noteService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Note updated", result)
}

func (h *noteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.noteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Note deleted", nil)
}
