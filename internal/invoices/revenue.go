package invoices

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRow is a single invoice amount with the moment it was recorded.
type RevenueRow struct {
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// MonthlyTotals buckets invoice amounts by calendar month for the given year.
// Index 0 is January and index 11 is December regardless of input order; rows
// outside the year are excluded and unobserved months stay zero.
func MonthlyTotals(rows []RevenueRow, year int) [12]decimal.Decimal {
	var totals [12]decimal.Decimal
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, row := range rows {
		if row.CreatedAt.Year() != year {
			continue
		}
		idx := int(row.CreatedAt.Month()) - 1
		totals[idx] = totals[idx].Add(row.Amount)
	}
	return totals
}
