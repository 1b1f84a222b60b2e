package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a catalog entry trainers reference from workout plans.
type Exercise struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string    `gorm:"column:name;not null;uniqueIndex"`
	Description *string   `gorm:"column:description"`
	BodyPart    *string   `gorm:"column:body_part"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
