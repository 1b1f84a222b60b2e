package packages

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
)

// PackageDTO exposes a membership package in API responses.
type PackageDTO struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	DurationMonths int             `json:"duration_months"`
	Price          decimal.Decimal `json:"price"`
	Description    *string         `json:"description,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreatePackageInput holds creation-time data for a new package.
type CreatePackageInput struct {
	Name           string
	DurationMonths int
	Price          decimal.Decimal
	Description    *string
}

// UpdatePackageInput captures the allowed package fields for mutation.
type UpdatePackageInput struct {
	Name           *string
	DurationMonths *int
	Price          *decimal.Decimal
	Description    *string
}

// FromModel maps the persisted package into a DTO.
func FromModel(m *models.Package) *PackageDTO {
	if m == nil {
		return nil
	}
	return &PackageDTO{
		ID:             m.ID,
		Name:           m.Name,
		DurationMonths: m.DurationMonths,
		Price:          m.Price,
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
