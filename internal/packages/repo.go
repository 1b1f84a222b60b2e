package packages

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
)

// Repository handles package persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to package operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new package row.
func (r *Repository) Create(ctx context.Context, pkg *models.Package) error {
	if pkg == nil {
		return fmt.Errorf("package is required")
	}
	return r.db.WithContext(ctx).Create(pkg).Error
}

// FindByID loads a package by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// List returns every package ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Package, error) {
	var pkgs []models.Package
	if err := r.db.WithContext(ctx).Order("name asc").Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}

// Update saves the provided package.
func (r *Repository) Update(ctx context.Context, pkg *models.Package) error {
	if pkg == nil {
		return fmt.Errorf("package is required")
	}
	return r.db.WithContext(ctx).Save(pkg).Error
}

// Delete removes the package row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Package{}, "id = ?", id).Error
}

// CountInvoices reports how many invoices reference the package.
func (r *Repository) CountInvoices(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("package_id = ?", id).
		Count(&count).Error
	return count, err
}
