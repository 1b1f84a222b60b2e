package invoices

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	"github.com/codegym/gym-manager-backend/pkg/pagination"
)

// Repository handles invoice persistence. Invoice rows are append-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to invoice operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithTx persists a new invoice using the provided transaction.
func (r *Repository) CreateWithTx(tx *gorm.DB, invoice *models.Invoice) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if invoice == nil {
		return fmt.Errorf("invoice is required")
	}
	return tx.Create(invoice).Error
}

type listQuery struct {
	filter HistoryFilter
	cursor *pagination.Cursor
	limit  int
}

// List returns invoices newest first, honoring the filter and cursor. The
// caller passes a buffered limit to detect the next page.
func (r *Repository) List(ctx context.Context, query listQuery) ([]models.Invoice, error) {
	q := r.db.WithContext(ctx).Model(&models.Invoice{})

	if query.filter.MemberID != nil {
		q = q.Where("member_id = ?", *query.filter.MemberID)
	}
	if query.filter.StartDate != nil {
		q = q.Where("created_at >= ?", query.filter.StartDate.Time())
	}
	if query.filter.EndDate != nil {
		// inclusive end date: everything before the following midnight
		q = q.Where("created_at < ?", query.filter.EndDate.AddDays(1).Time())
	}
	if query.cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", query.cursor.CreatedAt, query.cursor.ID)
	}

	var rows []models.Invoice
	err := q.Order("created_at desc, id desc").
		Limit(query.limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RevenueRows loads every (amount, created_at) pair recorded in the year.
func (r *Repository) RevenueRows(ctx context.Context, year int) ([]RevenueRow, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var rows []RevenueRow
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Select("amount", "created_at").
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
