package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	"github.com/codegym/gym-manager-backend/pkg/enums"
)

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	ID          uuid.UUID       `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Role        enums.StaffRole `json:"role"`
	IsActive    bool            `json:"is_active"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateUserInput holds the admin's new staff account form.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     enums.StaffRole
}

// UpdateUserInput captures the allowed staff fields for mutation.
type UpdateUserInput struct {
	Email    *string
	Role     *enums.StaffRole
	Password *string
}

// FromModel maps the persisted user into a DTO.
func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
