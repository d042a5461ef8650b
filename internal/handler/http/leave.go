package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-admin-go/internal/handler/http/response"
)

type LeaveHandler interface {
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListMonthly(w http.ResponseWriter, r *http.Request)
	CountByType(w http.ResponseWriter, r *http.Request)
	YearEndProcess(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// UpdateStatus implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.DecidedBy = userID

	updated, err := h.leaveService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+updated.Status, updated)
}

// ListPending implements LeaveHandler.
func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	filter := leave.PendingFilter{Department: r.URL.Query().Get("department")}

	requests, err := h.leaveService.ListPending(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

func dateRangeFromQuery(r *http.Request) leave.DateRangeFilter {
	q := r.URL.Query()
	return leave.DateRangeFilter{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}

// ListMonthly implements LeaveHandler.
func (h *leaveHandlerImpl) ListMonthly(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListMonthly(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// CountByType implements LeaveHandler.
func (h *leaveHandlerImpl) CountByType(w http.ResponseWriter, r *http.Request) {
	counts, err := h.leaveService.CountByType(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, counts)
}

// YearEndProcess implements LeaveHandler.
func (h *leaveHandlerImpl) YearEndProcess(w http.ResponseWriter, r *http.Request) {
	balances, err := h.leaveService.YearEndBalances(r.Context(), leave.YearFilter{Year: r.URL.Query().Get("year")})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, balances)
}
