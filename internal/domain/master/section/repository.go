package section

import "context"

type SectionRepository interface {
	List(ctx context.Context) ([]Section, error)
	GetByID(ctx context.Context, id string) (Section, error)
	Create(ctx context.Context, s Section) (Section, error)
	Update(ctx context.Context, s Section) (Section, error)
	Delete(ctx context.Context, id string) error
}
