package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice records one payment event. Rows are immutable; they disappear only
// through the member cascade.
type Invoice struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	MemberID  uuid.UUID       `gorm:"column:member_id;type:uuid;not null;index"`
	PackageID uuid.UUID       `gorm:"column:package_id;type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime;index"`
}
