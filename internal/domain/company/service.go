package company

import (
	"context"
)

type CompanyService interface {
	// List returns companies newest first
	List(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Create(ctx context.Context, req UpsertCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpsertCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error

	// UploadLogo stores a logo image and returns its public URL
	UploadLogo(ctx context.Context, req UploadLogoRequest) (LogoResponse, error)
}
