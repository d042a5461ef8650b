package hr

import "context"

type HRService interface {
	List(ctx context.Context, userID string, kind Kind) ([]CaseResponse, error)
	Create(ctx context.Context, kind Kind, req CreateCaseRequest) (CaseResponse, error)

	// Dashboard loads the three registers concurrently
	Dashboard(ctx context.Context, userID string) (DashboardResponse, error)
}
