package invoices

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
)

// InvoiceDTO exposes one payment record in API responses.
type InvoiceDTO struct {
	ID        uuid.UUID       `json:"id"`
	MemberID  uuid.UUID       `json:"member_id"`
	PackageID uuid.UUID       `json:"package_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentReceiptDTO is the cashier's view of a recorded payment: the invoice
// plus the member's new expiry.
type PaymentReceiptDTO struct {
	Invoice     InvoiceDTO   `json:"invoice"`
	ActiveUntil dbtypes.Date `json:"active_until"`
}

// HistoryFilter narrows the invoice listing.
type HistoryFilter struct {
	MemberID  *uuid.UUID
	StartDate *dbtypes.Date
	EndDate   *dbtypes.Date
}

// HistoryPage is one cursor page of invoice history.
type HistoryPage struct {
	Invoices   []InvoiceDTO `json:"invoices"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// FromModel maps the persisted invoice into a DTO.
func FromModel(m *models.Invoice) *InvoiceDTO {
	if m == nil {
		return nil
	}
	return &InvoiceDTO{
		ID:        m.ID,
		MemberID:  m.MemberID,
		PackageID: m.PackageID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}
