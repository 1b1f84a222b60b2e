package exercises

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
)

// Repository handles exercise persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to exercise operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new exercise row.
func (r *Repository) Create(ctx context.Context, exercise *models.Exercise) error {
	if exercise == nil {
		return fmt.Errorf("exercise is required")
	}
	return r.db.WithContext(ctx).Create(exercise).Error
}

// FindByID loads an exercise by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.WithContext(ctx).First(&exercise, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

// FindByIDs loads the exercises for the given IDs, keyed by ID.
func (r *Repository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Exercise, error) {
	var rows []models.Exercise
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.Exercise, len(rows))
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

// List returns every exercise ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Exercise, error) {
	var rows []models.Exercise
	if err := r.db.WithContext(ctx).Order("name asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update saves the provided exercise.
func (r *Repository) Update(ctx context.Context, exercise *models.Exercise) error {
	if exercise == nil {
		return fmt.Errorf("exercise is required")
	}
	return r.db.WithContext(ctx).Save(exercise).Error
}

// Delete removes the exercise row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Exercise{}, "id = ?", id).Error
}

// CountDetails reports how many workout detail rows reference the exercise.
func (r *Repository) CountDetails(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutDetail{}).
		Where("exercise_id = ?", id).
		Count(&count).Error
	return count, err
}
