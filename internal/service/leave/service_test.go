package leave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	leaveID   = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	userID    = "11111111-1111-4111-8111-111111111111"
	typeID    = "22222222-2222-4222-8222-222222222222"
	approver  = "33333333-3333-4333-8333-333333333333"
	missingID = "99999999-9999-4999-8999-999999999999"
)

type balanceKey struct {
	userID, leaveTypeID string
	year                int
}

// memoryStore backs both repositories; fakeTransactor restores it when fn fails.
type memoryStore struct {
	requests  map[string]leave.LeaveRequest
	balances  map[balanceKey]int
	failOnGet error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		requests: map[string]leave.LeaveRequest{},
		balances: map[balanceKey]int{},
	}
}

func (m *memoryStore) snapshot() (map[string]leave.LeaveRequest, map[balanceKey]int) {
	reqs := make(map[string]leave.LeaveRequest, len(m.requests))
	for k, v := range m.requests {
		reqs[k] = v
	}
	bals := make(map[balanceKey]int, len(m.balances))
	for k, v := range m.balances {
		bals[k] = v
	}
	return reqs, bals
}

type fakeTransactor struct{ store *memoryStore }

func (f fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	reqs, bals := f.store.snapshot()
	if err := fn(ctx); err != nil {
		f.store.requests, f.store.balances = reqs, bals
		return err
	}
	return nil
}

type fakeRequestRepo struct{ store *memoryStore }

func (f fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	if f.store.failOnGet != nil {
		return leave.LeaveRequest{}, f.store.failOnGet
	}
	r, ok := f.store.requests[id]
	if !ok {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	return r, nil
}

func (f fakeRequestRepo) Decide(ctx context.Context, id string, status leave.RequestStatus, reason *string, decidedBy *string) (leave.LeaveRequest, error) {
	r, ok := f.store.requests[id]
	if !ok || r.Status != leave.StatusPending {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	now := time.Now()
	r.Status = status
	r.DecidedBy = decidedBy
	r.DecidedAt = &now
	if status == leave.StatusRejected {
		r.RejectionReason = reason
	}
	f.store.requests[id] = r
	return r, nil
}

func (f fakeRequestRepo) ListPending(ctx context.Context, departmentID *string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.store.requests {
		if r.Status == leave.StatusPending {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f fakeRequestRepo) ListOverlapping(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.store.requests {
		if !r.StartDate.After(end) && !r.EndDate.Before(start) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (f fakeRequestRepo) CountEmployeesByType(ctx context.Context, start, end time.Time) ([]leave.LeaveTypeCount, error) {
	return []leave.LeaveTypeCount{{LeaveTypeID: typeID, Name: "Annual", Count: 2}, {Name: "Sick", Count: 0}}, nil
}

type fakeBalanceRepo struct {
	store    *memoryStore
	openErr  error
	openYear int
}

func (f *fakeBalanceRepo) IncrementUsedDays(ctx context.Context, userID, leaveTypeID string, year, days int) (bool, error) {
	key := balanceKey{userID, leaveTypeID, year}
	used, ok := f.store.balances[key]
	if !ok {
		return false, nil
	}
	f.store.balances[key] = used + days
	return true, nil
}

func (f *fakeBalanceRepo) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for k, used := range f.store.balances {
		if k.year == year {
			out = append(out, leave.LeaveBalance{UserID: k.userID, LeaveTypeID: k.leaveTypeID, Year: k.year, TotalDays: 12, UsedDays: used})
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) OpenYear(ctx context.Context, year int) (int64, error) {
	f.openYear = year
	return 4, f.openErr
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService(store *memoryStore) (*LeaveServiceImpl, *fakeBalanceRepo) {
	balances := &fakeBalanceRepo{store: store}
	svc := NewLeaveService(fakeTransactor{store}, fakeRequestRepo{store}, balances).(*LeaveServiceImpl)
	return svc, balances
}

func seedPending(store *memoryStore, start, end string) {
	store.requests[leaveID] = leave.LeaveRequest{
		ID:          leaveID,
		UserID:      userID,
		LeaveTypeID: typeID,
		StartDate:   date(start),
		EndDate:     date(end),
		Status:      leave.StatusPending,
	}
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 3, leave.InclusiveDays(date("2025-01-10"), date("2025-01-12")))
	assert.Equal(t, 1, leave.InclusiveDays(date("2025-01-10"), date("2025-01-10")))
	assert.Equal(t, 3, leave.InclusiveDays(date("2025-01-12"), date("2025-01-10")))
	assert.Equal(t, 2, leave.InclusiveDays(date("2024-12-31"), date("2025-01-01")))
}

func TestLeaveService_UpdateStatus_ApproveIncrementsBalance(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "2025-01-10", "2025-01-12")
	store.balances[balanceKey{userID, typeID, 2025}] = 2
	svc, _ := newTestService(store)

	// Act
	resp, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		LeaveID: leaveID, Status: leave.StatusApproved, DecidedBy: approver,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, 3, resp.TotalDays)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, approver, *resp.DecidedBy)
	assert.Equal(t, 5, store.balances[balanceKey{userID, typeID, 2025}])
}

func TestLeaveService_UpdateStatus_SecondApprovalIsRejected(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "2025-01-10", "2025-01-12")
	store.balances[balanceKey{userID, typeID, 2025}] = 0
	svc, _ := newTestService(store)
	req := leave.UpdateStatusRequest{LeaveID: leaveID, Status: leave.StatusApproved}

	_, err := svc.UpdateStatus(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), req)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
	assert.Equal(t, 3, store.balances[balanceKey{userID, typeID, 2025}])
}

func TestLeaveService_UpdateStatus_RejectDoesNotTouchBalance(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "2025-01-10", "2025-01-12")
	store.balances[balanceKey{userID, typeID, 2025}] = 1
	svc, _ := newTestService(store)
	reason := "Team at minimum staffing"

	resp, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		LeaveID: leaveID, Status: leave.StatusRejected, Reason: &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, reason, *resp.RejectionReason)
	assert.Equal(t, 1, store.balances[balanceKey{userID, typeID, 2025}])
}

func TestLeaveService_UpdateStatus_MissingBalanceRollsBack(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "2025-01-10", "2025-01-12")
	store.balances[balanceKey{userID, typeID, 2024}] = 0
	svc, _ := newTestService(store)

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{LeaveID: leaveID, Status: leave.StatusApproved})

	assert.ErrorIs(t, err, leave.ErrLeaveBalanceNotFound)
	assert.Equal(t, leave.StatusPending, store.requests[leaveID].Status)
}

func TestLeaveService_UpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(newMemoryStore())

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{LeaveID: missingID, Status: leave.StatusApproved})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_UpdateStatus_RepositoryError(t *testing.T) {
	store := newMemoryStore()
	store.failOnGet = errors.New("connection refused")
	svc, _ := newTestService(store)

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{LeaveID: leaveID, Status: leave.StatusApproved})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.failOnGet)
	assert.NotErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveService_UpdateStatus_Validation(t *testing.T) {
	svc, _ := newTestService(newMemoryStore())

	tests := []struct {
		name   string
		req    leave.UpdateStatusRequest
		fields []string
	}{
		{"missing both", leave.UpdateStatusRequest{}, []string{"leaveId", "status"}},
		{"bad status", leave.UpdateStatusRequest{LeaveID: leaveID, Status: "cancelled"}, []string{"status"}},
		{"pending is not a decision", leave.UpdateStatusRequest{LeaveID: leaveID, Status: leave.StatusPending}, []string{"status"}},
		{"bad id", leave.UpdateStatusRequest{LeaveID: "42", Status: leave.StatusApproved}, []string{"leaveId"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateStatus(context.Background(), tt.req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			details := verrs.ToMap()
			for _, f := range tt.fields {
				assert.Contains(t, details, f)
			}
		})
	}
}

func TestUpdateStatusRequest_DecodesCamelCaseBody(t *testing.T) {
	var req leave.UpdateStatusRequest

	// Act
	err := json.Unmarshal([]byte(`{"leaveId":"`+leaveID+`","status":"approved"}`), &req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, leaveID, req.LeaveID)
	assert.Equal(t, leave.StatusApproved, req.Status)
	assert.NoError(t, req.Validate())
}

func TestLeaveService_ListMonthly(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "2025-01-28", "2025-02-03")
	store.requests["b"] = leave.LeaveRequest{ID: "b", StartDate: date("2025-03-01"), EndDate: date("2025-03-02"), Status: leave.StatusApproved}
	svc, _ := newTestService(store)

	got, err := svc.ListMonthly(context.Background(), leave.DateRangeFilter{StartDate: "2025-02-01", EndDate: "2025-02-28"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, leaveID, got[0].ID)
	assert.Equal(t, 7, got[0].TotalDays)
}

func TestLeaveService_ListMonthly_RequiresRange(t *testing.T) {
	svc, _ := newTestService(newMemoryStore())

	_, err := svc.ListMonthly(context.Background(), leave.DateRangeFilter{StartDate: "2025-02-01"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "endDate")

	_, err = svc.ListMonthly(context.Background(), leave.DateRangeFilter{StartDate: "2025-02-10", EndDate: "2025-02-01"})
	require.ErrorAs(t, err, &verrs)
}

func TestLeaveService_ListPending(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "2025-01-10", "2025-01-12")
	svc, _ := newTestService(store)

	got, err := svc.ListPending(context.Background(), leave.PendingFilter{Department: "all"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListPending(context.Background(), leave.PendingFilter{Department: "engineering"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestLeaveService_CountByType(t *testing.T) {
	svc, _ := newTestService(newMemoryStore())

	got, err := svc.CountByType(context.Background(), leave.DateRangeFilter{StartDate: "2025-01-01", EndDate: "2025-01-31"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Annual", got[0].Name)
	assert.Equal(t, 2, got[0].Count)
}

func TestLeaveService_YearEndBalances_DefaultsToCurrentYear(t *testing.T) {
	store := newMemoryStore()
	store.balances[balanceKey{userID, typeID, 2026}] = 5
	store.balances[balanceKey{userID, typeID, 2025}] = 9
	svc, _ := newTestService(store)
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

	got, err := svc.YearEndBalances(context.Background(), leave.YearFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2026, got[0].Year)
	assert.Equal(t, 7, got[0].RemainingDays)

	got, err = svc.YearEndBalances(context.Background(), leave.YearFilter{Year: "2025"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 9, got[0].UsedDays)

	_, err = svc.YearEndBalances(context.Background(), leave.YearFilter{Year: "next"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestLeaveService_OpenYear(t *testing.T) {
	svc, balances := newTestService(newMemoryStore())

	created, err := svc.OpenYear(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(4), created)
	assert.Equal(t, 2026, balances.openYear)

	balances.openErr = fmt.Errorf("deadlock detected")
	_, err = svc.OpenYear(context.Background(), 2026)
	assert.ErrorContains(t, err, "failed to open leave year 2026")
}
