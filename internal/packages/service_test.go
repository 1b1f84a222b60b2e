package packages

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

type stubPackageRepo struct {
	pkg          *models.Package
	pkgs         []models.Package
	err          error
	invoiceCount int64
	countErr     error
	created      *models.Package
	deleted      []uuid.UUID
}

func (s *stubPackageRepo) Create(ctx context.Context, pkg *models.Package) error {
	if s.err != nil {
		return s.err
	}
	pkg.ID = uuid.New()
	s.created = pkg
	return nil
}

func (s *stubPackageRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.pkg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.pkg, nil
}

func (s *stubPackageRepo) List(ctx context.Context) ([]models.Package, error) {
	return s.pkgs, s.err
}

func (s *stubPackageRepo) Update(ctx context.Context, pkg *models.Package) error {
	return s.err
}

func (s *stubPackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubPackageRepo) CountInvoices(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.invoiceCount, s.countErr
}

func basePackage() *models.Package {
	return &models.Package{
		ID:             uuid.New(),
		Name:           "Quarterly",
		DurationMonths: 3,
		Price:          decimal.RequireFromString("120.00"),
	}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestServiceCreateValidates(t *testing.T) {
	svc, _ := NewService(&stubPackageRepo{})

	cases := []struct {
		name  string
		input CreatePackageInput
	}{
		{"blank name", CreatePackageInput{Name: "  ", DurationMonths: 1, Price: decimal.NewFromInt(10)}},
		{"zero duration", CreatePackageInput{Name: "Monthly", DurationMonths: 0, Price: decimal.NewFromInt(10)}},
		{"negative price", CreatePackageInput{Name: "Monthly", DurationMonths: 1, Price: decimal.NewFromInt(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestServiceCreateSuccess(t *testing.T) {
	repo := &stubPackageRepo{}
	svc, _ := NewService(repo)

	dto, err := svc.Create(context.Background(), CreatePackageInput{
		Name:           "  Annual ",
		DurationMonths: 12,
		Price:          decimal.RequireFromString("400.00"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Name != "Annual" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if repo.created == nil {
		t.Fatal("expected repo create call")
	}
}

func TestServiceDeleteGuardsInvoices(t *testing.T) {
	repo := &stubPackageRepo{pkg: basePackage(), invoiceCount: 2}
	svc, _ := NewService(repo)

	err := svc.Delete(context.Background(), repo.pkg.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("delete must not reach the repo when invoices exist")
	}
}

func TestServiceDeleteSuccess(t *testing.T) {
	repo := &stubPackageRepo{pkg: basePackage()}
	svc, _ := NewService(repo)

	if err := svc.Delete(context.Background(), repo.pkg.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected one delete, got %d", len(repo.deleted))
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	svc, _ := NewService(&stubPackageRepo{})
	_, err := svc.GetByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceListDependencyError(t *testing.T) {
	svc, _ := NewService(&stubPackageRepo{err: errors.New("boom")})
	_, err := svc.List(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
