package plans

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
)

// Repository handles workout plan persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to plan operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithTx persists the plan and its details in the provided transaction.
// GORM writes the association rows with the parent, so the unit is atomic.
func (r *Repository) CreateWithTx(tx *gorm.DB, plan *models.WorkoutPlan) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if plan == nil {
		return fmt.Errorf("plan is required")
	}
	return tx.Create(plan).Error
}

// ListByMember returns a member's plans, newest first, details ordered by
// position.
func (r *Repository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]models.WorkoutPlan, error) {
	var rows []models.WorkoutPlan
	err := r.db.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("member_id = ?", memberID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByTrainer reports how many plans a trainer owns. Used by the staff
// delete guard.
func (r *Repository) CountByTrainer(ctx context.Context, trainerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutPlan{}).
		Where("trainer_id = ?", trainerID).
		Count(&count).Error
	return count, err
}
