package members

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
)

// Repository handles member persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to member operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithTx persists a new member using the provided transaction.
func (r *Repository) CreateWithTx(tx *gorm.DB, member *models.Member) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if member == nil {
		return fmt.Errorf("member is required")
	}
	return tx.Create(member).Error
}

// FindByID loads a member by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByIDWithTx loads a member using the provided transaction.
func (r *Repository) FindByIDWithTx(tx *gorm.DB, id uuid.UUID) (*models.Member, error) {
	if tx == nil {
		return nil, gorm.ErrInvalidTransaction
	}
	var member models.Member
	if err := tx.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns every member ordered by registration date, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Member, error) {
	var rows []models.Member
	if err := r.db.WithContext(ctx).Order("registration_date desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateActiveUntilWithTx writes the new expiry using the provided transaction.
func (r *Repository) UpdateActiveUntilWithTx(tx *gorm.DB, id uuid.UUID, until dbtypes.Date) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	return tx.Model(&models.Member{}).
		Where("id = ?", id).
		Update("active_until", until).Error
}

// ListExpiringBetween returns members whose membership lapses inside the
// inclusive date window. Used by the reminder worker.
func (r *Repository) ListExpiringBetween(ctx context.Context, from, to dbtypes.Date) ([]models.Member, error) {
	var rows []models.Member
	err := r.db.WithContext(ctx).
		Where("active_until IS NOT NULL AND active_until >= ? AND active_until <= ?", from, to).
		Order("active_until asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
