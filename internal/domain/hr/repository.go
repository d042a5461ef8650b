package hr

import "context"

type CaseRepository interface {
	// ListByUser returns the user's cases of one kind, latest date first
	ListByUser(ctx context.Context, userID string, kind Kind) ([]Case, error)
	Create(ctx context.Context, c Case) (Case, error)
}
