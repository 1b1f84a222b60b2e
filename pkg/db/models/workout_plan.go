package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutPlan is a trainer's dated assignment to a member. Details are
// persisted with the plan in one transaction, never partially.
type WorkoutPlan struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	MemberID  uuid.UUID       `gorm:"column:member_id;type:uuid;not null;index"`
	TrainerID uuid.UUID       `gorm:"column:trainer_id;type:uuid;not null;index"`
	Notes     *string         `gorm:"column:notes"`
	Details   []WorkoutDetail `gorm:"foreignKey:PlanID"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// WorkoutDetail is one exercise row inside a plan. ScheduleDay keeps the raw
// comma-separated day tokens as submitted; normalization happens at
// validation time only.
type WorkoutDetail struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	PlanID      uuid.UUID `gorm:"column:plan_id;type:uuid;not null;index"`
	ExerciseID  uuid.UUID `gorm:"column:exercise_id;type:uuid;not null;index"`
	Sets        int       `gorm:"column:sets;not null"`
	Reps        string    `gorm:"column:reps;not null"`
	ScheduleDay string    `gorm:"column:schedule_day;not null"`
	Position    int       `gorm:"column:position;not null;default:0"`
}
