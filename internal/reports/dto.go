package reports

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
)

// MonthRevenueDTO is one calendar month's invoice total.
type MonthRevenueDTO struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// RevenueReportDTO carries the twelve monthly totals for a year.
type RevenueReportDTO struct {
	Year   int               `json:"year"`
	Months []MonthRevenueDTO `json:"months"`
}

// ActiveMembersDTO reports how many memberships are current as of a date.
type ActiveMembersDTO struct {
	AsOf  dbtypes.Date `json:"as_of"`
	Count int64        `json:"count"`
}

// PackageDistributionDTO counts members whose latest invoice bought a package.
type PackageDistributionDTO struct {
	PackageID   uuid.UUID `json:"package_id"`
	PackageName string    `json:"package_name"`
	MemberCount int64     `json:"member_count"`
}
