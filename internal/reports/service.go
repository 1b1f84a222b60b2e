package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/codegym/gym-manager-backend/internal/invoices"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

type revenueSource interface {
	RevenueRows(ctx context.Context, year int) ([]invoices.RevenueRow, error)
}

type reportsRepository interface {
	ActiveMemberCount(ctx context.Context, asOf dbtypes.Date) (int64, error)
	MembersPerPackage(ctx context.Context, asOf dbtypes.Date) ([]PackageDistributionDTO, error)
}

// Service answers the admin and cashier dashboard queries.
type Service interface {
	Revenue(ctx context.Context, year int) (*RevenueReportDTO, error)
	ActiveMembers(ctx context.Context) (*ActiveMembersDTO, error)
	MembersPerPackage(ctx context.Context) ([]PackageDistributionDTO, error)
}

type service struct {
	repo    reportsRepository
	revenue revenueSource
	now     func() time.Time
}

func NewService(repo reportsRepository, revenue revenueSource) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	if revenue == nil {
		return nil, fmt.Errorf("revenue source required")
	}
	return &service{
		repo:    repo,
		revenue: revenue,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) Revenue(ctx context.Context, year int) (*RevenueReportDTO, error) {
	if year < 1970 || year > 9999 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "year out of range")
	}

	rows, err := s.revenue.RevenueRows(ctx, year)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load revenue rows")
	}

	totals := invoices.MonthlyTotals(rows, year)
	months := make([]MonthRevenueDTO, 0, len(totals))
	for i, total := range totals {
		months = append(months, MonthRevenueDTO{Month: i + 1, Total: total})
	}
	return &RevenueReportDTO{Year: year, Months: months}, nil
}

func (s *service) ActiveMembers(ctx context.Context) (*ActiveMembersDTO, error) {
	today := dbtypes.DateOf(s.now())
	count, err := s.repo.ActiveMemberCount(ctx, today)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count active members")
	}
	return &ActiveMembersDTO{AsOf: today, Count: count}, nil
}

func (s *service) MembersPerPackage(ctx context.Context) ([]PackageDistributionDTO, error) {
	rows, err := s.repo.MembersPerPackage(ctx, dbtypes.DateOf(s.now()))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "members per package")
	}
	return rows, nil
}
