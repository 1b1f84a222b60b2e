package exercises

import (
	"time"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
)

// ExerciseDTO exposes a catalog exercise in API responses.
type ExerciseDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	BodyPart    *string   `json:"body_part,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateExerciseInput holds creation-time data for a new exercise.
type CreateExerciseInput struct {
	Name        string
	Description *string
	BodyPart    *string
}

// UpdateExerciseInput captures the allowed exercise fields for mutation.
type UpdateExerciseInput struct {
	Name        *string
	Description *string
	BodyPart    *string
}

// FromModel maps the persisted exercise into a DTO.
func FromModel(m *models.Exercise) *ExerciseDTO {
	if m == nil {
		return nil
	}
	return &ExerciseDTO{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		BodyPart:    m.BodyPart,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
