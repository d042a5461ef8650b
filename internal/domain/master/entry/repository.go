package entry

import "context"

// EntryRepository stores every kind; kind selects the table.
type EntryRepository interface {
	List(ctx context.Context, kind Kind) ([]Entry, error)
	GetByID(ctx context.Context, kind Kind, id string) (Entry, error)
	Create(ctx context.Context, kind Kind, e Entry) (Entry, error)
	Update(ctx context.Context, kind Kind, e Entry) (Entry, error)
	Delete(ctx context.Context, kind Kind, id string) error
}
