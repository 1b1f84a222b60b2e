package packages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db"
	"github.com/codegym/gym-manager-backend/pkg/db/models"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

type packageRepository interface {
	Create(ctx context.Context, pkg *models.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error)
	List(ctx context.Context) ([]models.Package, error)
	Update(ctx context.Context, pkg *models.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountInvoices(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service exposes package catalog operations.
type Service interface {
	List(ctx context.Context) ([]PackageDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PackageDTO, error)
	Create(ctx context.Context, input CreatePackageInput) (*PackageDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePackageInput) (*PackageDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo packageRepository
}

// NewService builds a package service with the provided repository.
func NewService(repo packageRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("package repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]PackageDTO, error) {
	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list packages")
	}
	out := make([]PackageDTO, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, *FromModel(&pkgs[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*PackageDTO, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load package")
	}
	return FromModel(pkg), nil
}

func (s *service) Create(ctx context.Context, input CreatePackageInput) (*PackageDTO, error) {
	if err := validatePackageFields(input.Name, input.DurationMonths, input.Price.IsNegative()); err != nil {
		return nil, err
	}

	pkg := &models.Package{
		Name:           strings.TrimSpace(input.Name),
		DurationMonths: input.DurationMonths,
		Price:          input.Price,
		Description:    input.Description,
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "package name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create package")
	}
	return FromModel(pkg), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePackageInput) (*PackageDTO, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load package")
	}

	if input.Name != nil {
		pkg.Name = strings.TrimSpace(*input.Name)
	}
	if input.DurationMonths != nil {
		pkg.DurationMonths = *input.DurationMonths
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if input.Description != nil {
		pkg.Description = input.Description
	}

	if err := validatePackageFields(pkg.Name, pkg.DurationMonths, pkg.Price.IsNegative()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, pkg); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "package name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update package")
	}
	return FromModel(pkg), nil
}

// Delete refuses to remove a package that invoices still reference, so past
// payment history keeps resolving.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "package not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load package")
	}

	count, err := s.repo.CountInvoices(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count package invoices")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "package has invoices and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete package")
	}
	return nil
}

func validatePackageFields(name string, durationMonths int, priceNegative bool) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if durationMonths < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "duration must be at least one month")
	}
	if priceNegative {
		return pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	return nil
}
