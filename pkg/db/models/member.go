package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	"github.com/codegym/gym-manager-backend/pkg/enums"
)

// Member is a gym customer. ActiveUntil is nil for a member who was never
// activated; once set it only ever moves forward.
type Member struct {
	ID               uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FullName         string        `gorm:"column:full_name;not null"`
	Gender           enums.Gender  `gorm:"column:gender;type:gender;not null"`
	DateOfBirth      dbtypes.Date  `gorm:"column:date_of_birth;type:date;not null"`
	Phone            string        `gorm:"column:phone;not null"`
	Email            string        `gorm:"column:email;not null;uniqueIndex"`
	RegistrationDate time.Time     `gorm:"column:registration_date;not null;autoCreateTime"`
	ActiveUntil      *dbtypes.Date `gorm:"column:active_until;type:date"`
	CreatedAt        time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
