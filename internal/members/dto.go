package members

import (
	"time"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	"github.com/codegym/gym-manager-backend/pkg/enums"
)

// MemberDTO exposes member data in API responses.
type MemberDTO struct {
	ID               uuid.UUID     `json:"id"`
	FullName         string        `json:"full_name"`
	Gender           enums.Gender  `json:"gender"`
	DateOfBirth      dbtypes.Date  `json:"date_of_birth"`
	Phone            string        `json:"phone"`
	Email            string        `json:"email"`
	RegistrationDate time.Time     `json:"registration_date"`
	ActiveUntil      *dbtypes.Date `json:"active_until,omitempty"`
	Active           bool          `json:"active"`
}

// RegisterMemberInput holds the registration form: member details plus the
// package paid for up front.
type RegisterMemberInput struct {
	FullName    string
	Gender      enums.Gender
	DateOfBirth dbtypes.Date
	Phone       string
	Email       string
	PackageID   uuid.UUID
}

// FromModel maps the persisted member into a DTO. Activity is judged against
// the provided reference date.
func FromModel(m *models.Member, today dbtypes.Date) *MemberDTO {
	if m == nil {
		return nil
	}
	active := m.ActiveUntil != nil && !m.ActiveUntil.Before(today)
	return &MemberDTO{
		ID:               m.ID,
		FullName:         m.FullName,
		Gender:           m.Gender,
		DateOfBirth:      m.DateOfBirth,
		Phone:            m.Phone,
		Email:            m.Email,
		RegistrationDate: m.RegistrationDate,
		ActiveUntil:      m.ActiveUntil,
		Active:           active,
	}
}
