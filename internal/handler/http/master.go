package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/entry"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/section"
	"github.com/cmlabs-hris/workforce-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-admin-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	// Entry handlers are bound to one kind at route registration
	ListEntries(kind entry.Kind) http.HandlerFunc
	GetEntry(kind entry.Kind) http.HandlerFunc
	CreateEntry(kind entry.Kind) http.HandlerFunc
	UpdateEntry(kind entry.Kind) http.HandlerFunc
	DeleteEntry(kind entry.Kind) http.HandlerFunc

	// Section handlers
	ListSections(w http.ResponseWriter, r *http.Request)
	GetSection(w http.ResponseWriter, r *http.Request)
	CreateSection(w http.ResponseWriter, r *http.Request)
	UpdateSection(w http.ResponseWriter, r *http.Request)
	DeleteSection(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== ENTRY HANDLERS ====================

func (h *masterHandlerImpl) ListEntries(kind entry.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.masterService.ListEntries(r.Context(), kind)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, entries)
	}
}

func (h *masterHandlerImpl) GetEntry(kind entry.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := h.masterService.GetEntry(r.Context(), kind, chi.URLParam(r, "id"))
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, e)
	}
}

func (h *masterHandlerImpl) CreateEntry(kind entry.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req entry.UpsertEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		created, err := h.masterService.CreateEntry(r.Context(), kind, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Created(w, kind.Label()+" created successfully", created)
	}
}

func (h *masterHandlerImpl) UpdateEntry(kind entry.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req entry.UpsertEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		updated, err := h.masterService.UpdateEntry(r.Context(), kind, chi.URLParam(r, "id"), req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, kind.Label()+" updated successfully", updated)
	}
}

func (h *masterHandlerImpl) DeleteEntry(kind entry.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.masterService.DeleteEntry(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, kind.Label()+" deleted successfully", nil)
	}
}

// ==================== SECTION HANDLERS ====================

func (h *masterHandlerImpl) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.masterService.ListSections(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sections)
}

func (h *masterHandlerImpl) GetSection(w http.ResponseWriter, r *http.Request) {
	s, err := h.masterService.GetSection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

func (h *masterHandlerImpl) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req section.UpsertSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateSection(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Section created successfully", created)
}

func (h *masterHandlerImpl) UpdateSection(w http.ResponseWriter, r *http.Request) {
	var req section.UpsertSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.masterService.UpdateSection(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Section updated successfully", updated)
}

func (h *masterHandlerImpl) DeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteSection(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Section deleted successfully", nil)
}
