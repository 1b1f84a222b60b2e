package members

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db"
	"github.com/codegym/gym-manager-backend/pkg/db/models"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
	"github.com/codegym/gym-manager-backend/pkg/logger"
	"github.com/codegym/gym-manager-backend/pkg/mailer"
)

type memberRepository interface {
	CreateWithTx(tx *gorm.DB, member *models.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
}

type packageFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Package, error)
}

type invoiceWriter interface {
	CreateWithTx(tx *gorm.DB, invoice *models.Invoice) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes member registration and lookup.
type Service interface {
	List(ctx context.Context) ([]MemberDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MemberDTO, error)
	// Register creates the member and their first invoice in one transaction
	// and initializes active_until from the chosen package.
	Register(ctx context.Context, input RegisterMemberInput) (*MemberDTO, error)
}

type service struct {
	repo     memberRepository
	packages packageFinder
	invoices invoiceWriter
	tx       txRunner
	mail     mailer.Mailer
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds a member service with the provided collaborators.
func NewService(repo memberRepository, packages packageFinder, invoices invoiceWriter, tx txRunner, mail mailer.Mailer, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if packages == nil {
		return nil, fmt.Errorf("package repository required")
	}
	if invoices == nil {
		return nil, fmt.Errorf("invoice repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if mail == nil {
		mail = mailer.NoopMailer{}
	}
	return &service{
		repo:     repo,
		packages: packages,
		invoices: invoices,
		tx:       tx,
		mail:     mail,
		logg:     logg,
		now:      time.Now,
	}, nil
}

func (s *service) List(ctx context.Context) ([]MemberDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list members")
	}
	today := dbtypes.DateOf(s.now())
	out := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i], today))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*MemberDTO, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load member")
	}
	return FromModel(member, dbtypes.DateOf(s.now())), nil
}

func (s *service) Register(ctx context.Context, input RegisterMemberInput) (*MemberDTO, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	pkg, err := s.packages.FindByID(ctx, input.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown package")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load package")
	}

	today := dbtypes.DateOf(s.now())
	until, err := ExtendMembership(today, nil, pkg.DurationMonths)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "compute membership expiry")
	}

	member := &models.Member{
		FullName:    strings.TrimSpace(input.FullName),
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		ActiveUntil: &until,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.CreateWithTx(tx, member); err != nil {
			return err
		}
		return s.invoices.CreateWithTx(tx, &models.Invoice{
			MemberID:  member.ID,
			PackageID: pkg.ID,
			Amount:    pkg.Price,
		})
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "a member with this email already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register member")
	}

	s.sendConfirmation(ctx, member, pkg, until)

	return FromModel(member, today), nil
}

// sendConfirmation delivers the welcome mail. Delivery failure never fails a
// registration that already committed.
func (s *service) sendConfirmation(ctx context.Context, member *models.Member, pkg *models.Package, until dbtypes.Date) {
	subject := "Welcome to the gym"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour registration is confirmed. Your %s membership is active until %s.\n\nSee you at the gym!",
		member.FullName, pkg.Name, until,
	)
	if err := s.mail.Send(ctx, member.Email, subject, body); err != nil && s.logg != nil {
		ctx = s.logg.WithMemberID(ctx, member.ID.String())
		s.logg.Error(ctx, "sending registration confirmation failed", err)
	}
}

func validateRegistration(input RegisterMemberInput) error {
	if strings.TrimSpace(input.FullName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "full name is required")
	}
	if !input.Gender.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid gender")
	}
	if input.DateOfBirth.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "date of birth is required")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}
	if input.PackageID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "package is required")
	}
	return nil
}
