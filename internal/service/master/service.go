package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/entry"
	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/section"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type MasterService interface {
	// Code/name resources: departments, designations, categories, extra classifications
	ListEntries(ctx context.Context, kind entry.Kind) ([]entry.EntryResponse, error)
	GetEntry(ctx context.Context, kind entry.Kind, id string) (entry.EntryResponse, error)
	CreateEntry(ctx context.Context, kind entry.Kind, req entry.UpsertEntryRequest) (entry.EntryResponse, error)
	UpdateEntry(ctx context.Context, kind entry.Kind, id string, req entry.UpsertEntryRequest) (entry.EntryResponse, error)
	DeleteEntry(ctx context.Context, kind entry.Kind, id string) error

	// Section operations
	ListSections(ctx context.Context) ([]section.SectionResponse, error)
	GetSection(ctx context.Context, id string) (section.SectionResponse, error)
	CreateSection(ctx context.Context, req section.UpsertSectionRequest) (section.SectionResponse, error)
	UpdateSection(ctx context.Context, id string, req section.UpsertSectionRequest) (section.SectionResponse, error)
	DeleteSection(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	entryRepo   entry.EntryRepository
	sectionRepo section.SectionRepository
}

func NewMasterService(entryRepo entry.EntryRepository, sectionRepo section.SectionRepository) MasterService {
	return &masterServiceImpl{
		entryRepo:   entryRepo,
		sectionRepo: sectionRepo,
	}
}

// ==================== ENTRY OPERATIONS ====================

func (s *masterServiceImpl) ListEntries(ctx context.Context, kind entry.Kind) ([]entry.EntryResponse, error) {
	if !kind.IsValid() {
		return nil, entry.ErrUnknownKind
	}

	entries, err := s.entryRepo.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", kind, err)
	}

	responses := make([]entry.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, entry.NewEntryResponse(e))
	}
	return responses, nil
}

func (s *masterServiceImpl) GetEntry(ctx context.Context, kind entry.Kind, id string) (entry.EntryResponse, error) {
	if !kind.IsValid() {
		return entry.EntryResponse{}, entry.ErrUnknownKind
	}
	if !validator.IsValidUUID(id) {
		return entry.EntryResponse{}, entry.NewKindError(kind, entry.ErrNotFound)
	}

	e, err := s.entryRepo.GetByID(ctx, kind, id)
	if err != nil {
		return entry.EntryResponse{}, mapEntryError(kind, "get", err)
	}
	return entry.NewEntryResponse(e), nil
}

func (s *masterServiceImpl) CreateEntry(ctx context.Context, kind entry.Kind, req entry.UpsertEntryRequest) (entry.EntryResponse, error) {
	if !kind.IsValid() {
		return entry.EntryResponse{}, entry.ErrUnknownKind
	}
	if err := req.Validate(); err != nil {
		return entry.EntryResponse{}, err
	}

	created, err := s.entryRepo.Create(ctx, kind, entry.Entry{Kind: kind, Code: req.Code, Name: req.Name})
	if err != nil {
		return entry.EntryResponse{}, mapEntryError(kind, "create", err)
	}
	return entry.NewEntryResponse(created), nil
}

func (s *masterServiceImpl) UpdateEntry(ctx context.Context, kind entry.Kind, id string, req entry.UpsertEntryRequest) (entry.EntryResponse, error) {
	if !kind.IsValid() {
		return entry.EntryResponse{}, entry.ErrUnknownKind
	}
	if !validator.IsValidUUID(id) {
		return entry.EntryResponse{}, entry.NewKindError(kind, entry.ErrNotFound)
	}
	if err := req.Validate(); err != nil {
		return entry.EntryResponse{}, err
	}

	updated, err := s.entryRepo.Update(ctx, kind, entry.Entry{ID: id, Kind: kind, Code: req.Code, Name: req.Name})
	if err != nil {
		return entry.EntryResponse{}, mapEntryError(kind, "update", err)
	}
	return entry.NewEntryResponse(updated), nil
}

func (s *masterServiceImpl) DeleteEntry(ctx context.Context, kind entry.Kind, id string) error {
	if !kind.IsValid() {
		return entry.ErrUnknownKind
	}
	if !validator.IsValidUUID(id) {
		return entry.NewKindError(kind, entry.ErrNotFound)
	}

	if err := s.entryRepo.Delete(ctx, kind, id); err != nil {
		return mapEntryError(kind, "delete", err)
	}
	return nil
}

func mapEntryError(kind entry.Kind, op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return entry.NewKindError(kind, entry.ErrNotFound)
	case database.IsUniqueViolation(err):
		return entry.NewKindError(kind, entry.ErrCodeExists)
	case database.IsForeignKeyViolation(err):
		return entry.NewKindError(kind, entry.ErrInUse)
	}
	return fmt.Errorf("failed to %s %s: %w", op, kind, err)
}

// ==================== SECTION OPERATIONS ====================

func (s *masterServiceImpl) ListSections(ctx context.Context) ([]section.SectionResponse, error) {
	sections, err := s.sectionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	responses := make([]section.SectionResponse, 0, len(sections))
	for _, sec := range sections {
		responses = append(responses, section.NewSectionResponse(sec))
	}
	return responses, nil
}

func (s *masterServiceImpl) GetSection(ctx context.Context, id string) (section.SectionResponse, error) {
	if !validator.IsValidUUID(id) {
		return section.SectionResponse{}, section.ErrSectionNotFound
	}

	sec, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return section.SectionResponse{}, mapSectionError("get", err)
	}
	return section.NewSectionResponse(sec), nil
}

func (s *masterServiceImpl) CreateSection(ctx context.Context, req section.UpsertSectionRequest) (section.SectionResponse, error) {
	if err := req.Validate(); err != nil {
		return section.SectionResponse{}, err
	}

	created, err := s.sectionRepo.Create(ctx, section.Section{
		Code:         req.Code,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return section.SectionResponse{}, mapSectionError("create", err)
	}
	return section.NewSectionResponse(created), nil
}

func (s *masterServiceImpl) UpdateSection(ctx context.Context, id string, req section.UpsertSectionRequest) (section.SectionResponse, error) {
	if !validator.IsValidUUID(id) {
		return section.SectionResponse{}, section.ErrSectionNotFound
	}
	if err := req.Validate(); err != nil {
		return section.SectionResponse{}, err
	}

	updated, err := s.sectionRepo.Update(ctx, section.Section{
		ID:           id,
		Code:         req.Code,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return section.SectionResponse{}, mapSectionError("update", err)
	}
	return section.NewSectionResponse(updated), nil
}

func (s *masterServiceImpl) DeleteSection(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return section.ErrSectionNotFound
	}
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return mapSectionError("delete", err)
	}
	return nil
}

func mapSectionError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return section.ErrSectionNotFound
	case database.IsUniqueViolation(err):
		return section.ErrSectionCodeExists
	case database.IsForeignKeyViolation(err):
		return section.ErrDepartmentNotFound
	}
	return fmt.Errorf("failed to %s section: %w", op, err)
}
