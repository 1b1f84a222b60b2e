package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
)

// Repository handles system configuration persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to settings operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the config row for the key.
func (r *Repository) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	var cfg models.SystemConfig
	if err := r.db.WithContext(ctx).First(&cfg, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Upsert writes the value for the key, inserting the row when absent.
func (r *Repository) Upsert(ctx context.Context, cfg *models.SystemConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(cfg).Error
}
