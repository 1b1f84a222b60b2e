package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/internal/members"
	"github.com/codegym/gym-manager-backend/pkg/db/models"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
	"github.com/codegym/gym-manager-backend/pkg/pagination"
)

type invoiceRepository interface {
	CreateWithTx(tx *gorm.DB, invoice *models.Invoice) error
	List(ctx context.Context, query listQuery) ([]models.Invoice, error)
}

type memberTxRepository interface {
	FindByIDWithTx(tx *gorm.DB, id uuid.UUID) (*models.Member, error)
	UpdateActiveUntilWithTx(tx *gorm.DB, id uuid.UUID, until dbtypes.Date) error
}

type packageFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the cashier's payment operations.
type Service interface {
	// RecordPayment creates an invoice and extends the member's membership by
	// the package duration in one transaction.
	RecordPayment(ctx context.Context, memberID, packageID uuid.UUID) (*PaymentReceiptDTO, error)
	History(ctx context.Context, params pagination.Params, filter HistoryFilter) (*HistoryPage, error)
}

type service struct {
	repo       invoiceRepository
	memberRepo memberTxRepository
	packages   packageFinder
	tx         txRunner
	now        func() time.Time
}

// NewService builds an invoice service with the provided collaborators.
func NewService(repo invoiceRepository, memberRepo memberTxRepository, packages packageFinder, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invoice repository required")
	}
	if memberRepo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if packages == nil {
		return nil, fmt.Errorf("package repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:       repo,
		memberRepo: memberRepo,
		packages:   packages,
		tx:         tx,
		now:        time.Now,
	}, nil
}

func (s *service) RecordPayment(ctx context.Context, memberID, packageID uuid.UUID) (*PaymentReceiptDTO, error) {
	if memberID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "member is required")
	}
	if packageID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "package is required")
	}

	pkg, err := s.packages.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown package")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load package")
	}

	today := dbtypes.DateOf(s.now())
	var (
		invoice *models.Invoice
		until   dbtypes.Date
	)
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		member, err := s.memberRepo.FindByIDWithTx(tx, memberID)
		if err != nil {
			return err
		}

		until, err = members.ExtendMembership(today, member.ActiveUntil, pkg.DurationMonths)
		if err != nil {
			return err
		}

		invoice = &models.Invoice{
			MemberID:  member.ID,
			PackageID: pkg.ID,
			Amount:    pkg.Price,
		}
		if err := s.repo.CreateWithTx(tx, invoice); err != nil {
			return err
		}
		return s.memberRepo.UpdateActiveUntilWithTx(tx, member.ID, until)
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		case errors.Is(err, members.ErrInvalidDuration):
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid package duration")
		default:
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record payment")
		}
	}

	return &PaymentReceiptDTO{
		Invoice:     *FromModel(invoice),
		ActiveUntil: until,
	}, nil
}

func (s *service) History(ctx context.Context, params pagination.Params, filter HistoryFilter) (*HistoryPage, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date precedes start date")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	query := listQuery{
		filter: filter,
		limit:  pagination.LimitWithBuffer(params.Limit),
	}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.cursor = cursor
	}

	rows, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list invoices")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	out := make([]InvoiceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return &HistoryPage{Invoices: out, NextCursor: nextCursor}, nil
}
