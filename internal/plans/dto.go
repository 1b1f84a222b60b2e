package plans

import (
	"time"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
)

// PlanRowInput is one exercise row as submitted by the trainer.
type PlanRowInput struct {
	ExerciseID uuid.UUID
	Sets       int
	Reps       string
	Days       string
}

// CreatePlanInput is a full plan submission.
type CreatePlanInput struct {
	MemberID  uuid.UUID
	TrainerID uuid.UUID
	Notes     *string
	Rows      []PlanRowInput
}

// PlanDetailDTO exposes one plan row in API responses.
type PlanDetailDTO struct {
	ID           uuid.UUID `json:"id"`
	ExerciseID   uuid.UUID `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name,omitempty"`
	Sets         int       `json:"sets"`
	Reps         string    `json:"reps"`
	ScheduleDay  string    `json:"schedule_day"`
	Position     int       `json:"position"`
}

// PlanDTO exposes a workout plan with its ordered details.
type PlanDTO struct {
	ID        uuid.UUID       `json:"id"`
	MemberID  uuid.UUID       `json:"member_id"`
	TrainerID uuid.UUID       `json:"trainer_id"`
	Notes     *string         `json:"notes,omitempty"`
	Details   []PlanDetailDTO `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}

// FromModel maps the persisted plan into a DTO. exerciseNames may be nil.
func FromModel(m *models.WorkoutPlan, exerciseNames map[uuid.UUID]string) *PlanDTO {
	if m == nil {
		return nil
	}
	details := make([]PlanDetailDTO, 0, len(m.Details))
	for _, d := range m.Details {
		details = append(details, PlanDetailDTO{
			ID:           d.ID,
			ExerciseID:   d.ExerciseID,
			ExerciseName: exerciseNames[d.ExerciseID],
			Sets:         d.Sets,
			Reps:         d.Reps,
			ScheduleDay:  d.ScheduleDay,
			Position:     d.Position,
		})
	}
	return &PlanDTO{
		ID:        m.ID,
		MemberID:  m.MemberID,
		TrainerID: m.TrainerID,
		Notes:     m.Notes,
		Details:   details,
		CreatedAt: m.CreatedAt,
	}
}
