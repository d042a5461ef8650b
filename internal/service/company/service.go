package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/company"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
	"github.com/cmlabs-hris/workforce-admin-go/internal/service/file"
	"github.com/jackc/pgx/v5"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
	fileService file.FileService
}

func NewCompanyService(companyRepo company.CompanyRepository, fileService file.FileService) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepo,
		fileService:       fileService,
	}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, co := range companies {
		responses = append(responses, company.NewCompanyResponse(co))
	}
	return responses, nil
}

// GetByID implements company.CompanyService.
func (c *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	if err := validateID(id); err != nil {
		return company.CompanyResponse{}, err
	}

	found, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, mapCompanyError("get", err)
	}
	return company.NewCompanyResponse(found), nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.UpsertCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := c.CompanyRepository.Create(ctx, req.ToCompany())
	if err != nil {
		return company.CompanyResponse{}, mapCompanyError("create", err)
	}

	slog.Info("company created", "company_id", created.ID, "code", created.Code)
	return company.NewCompanyResponse(created), nil
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpsertCompanyRequest) (company.CompanyResponse, error) {
	if err := validateID(id); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	existing, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, mapCompanyError("update", err)
	}

	toUpdate := req.ToCompany()
	toUpdate.ID = id

	updated, err := c.CompanyRepository.Update(ctx, toUpdate)
	if err != nil {
		return company.CompanyResponse{}, mapCompanyError("update", err)
	}

	c.removeReplacedLogo(ctx, existing.LogoURL, updated.LogoURL)
	return company.NewCompanyResponse(updated), nil
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	existing, err := c.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return mapCompanyError("delete", err)
	}

	if err := c.CompanyRepository.Delete(ctx, id); err != nil {
		return mapCompanyError("delete", err)
	}

	c.removeReplacedLogo(ctx, existing.LogoURL, nil)
	slog.Info("company deleted", "company_id", id)
	return nil
}

// UploadLogo implements company.CompanyService.
func (c *CompanyServiceImpl) UploadLogo(ctx context.Context, req company.UploadLogoRequest) (company.LogoResponse, error) {
	if err := req.Validate(); err != nil {
		return company.LogoResponse{}, err
	}

	key, err := c.fileService.UploadCompanyLogo(ctx, req.CompanyCode, req.File, req.Filename)
	if err != nil {
		return company.LogoResponse{}, err
	}

	url, err := c.fileService.GetFileURL(ctx, key)
	if err != nil {
		return company.LogoResponse{}, fmt.Errorf("failed to resolve logo url: %w", err)
	}

	return company.LogoResponse{URL: url, Path: key}, nil
}

// removeReplacedLogo drops the stored file behind old once it is no longer the company logo.
// The company change has already been committed, so a failure is only logged.
func (c *CompanyServiceImpl) removeReplacedLogo(ctx context.Context, old, current *string) {
	if old == nil || *old == "" {
		return
	}
	if current != nil && *current == *old {
		return
	}
	if err := c.fileService.DeleteLogo(ctx, *old); err != nil {
		slog.Warn("failed to delete replaced company logo", "logo_url", *old, "error", err)
	}
}

// validateID reports malformed ids as not found; no row can carry them.
func validateID(id string) error {
	if !validator.IsValidUUID(id) {
		return company.ErrCompanyNotFound
	}
	return nil
}

func mapCompanyError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return company.ErrCompanyNotFound
	case database.IsUniqueViolation(err):
		return company.ErrCompanyCodeExists
	}
	return fmt.Errorf("failed to %s company: %w", op, err)
}
