package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/hr"
	"github.com/cmlabs-hris/workforce-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HRHandler interface {
	ListCases(w http.ResponseWriter, r *http.Request)
	CreateCase(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type hrHandlerImpl struct {
	hrService hr.HRService
}

func NewHRHandler(hrService hr.HRService) HRHandler {
	return &hrHandlerImpl{
		hrService: hrService,
	}
}

// ListCases implements HRHandler.
func (h *hrHandlerImpl) ListCases(w http.ResponseWriter, r *http.Request) {
	kind, ok := hr.KindFromSegment(chi.URLParam(r, "kind"))
	if !ok {
		response.HandleError(w, hr.ErrUnknownKind)
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	cases, err := h.hrService.List(r.Context(), userID, kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cases)
}

// CreateCase implements HRHandler.
func (h *hrHandlerImpl) CreateCase(w http.ResponseWriter, r *http.Request) {
	kind, ok := hr.KindFromSegment(chi.URLParam(r, "kind"))
	if !ok {
		response.HandleError(w, hr.ErrUnknownKind)
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req hr.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	created, err := h.hrService.Create(r.Context(), kind, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Case created successfully", created)
}

// Dashboard implements HRHandler.
func (h *hrHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	dashboard, err := h.hrService.Dashboard(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dashboard)
}
