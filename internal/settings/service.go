package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

const (
	// MinTrainingDays and MaxTrainingDays bound the admin-settable weekly cap.
	MinTrainingDays = 1
	MaxTrainingDays = 7
)

type configRepository interface {
	Get(ctx context.Context, key string) (*models.SystemConfig, error)
	Upsert(ctx context.Context, cfg *models.SystemConfig) error
}

// Service exposes system configuration reads and writes.
type Service interface {
	// MaxTrainingDays returns the current weekly training-day cap. An absent
	// or malformed row falls back to the default rather than failing.
	MaxTrainingDays(ctx context.Context) (int, error)
	SetMaxTrainingDays(ctx context.Context, days int) error
}

type service struct {
	repo configRepository
}

// NewService builds a settings service with the provided repository.
func NewService(repo configRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("config repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) MaxTrainingDays(ctx context.Context) (int, error) {
	cfg, err := s.repo.Get(ctx, models.ConfigMaxTrainingDays)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultMaxTrainingDays, nil
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load max training days")
	}

	days, err := strconv.Atoi(cfg.Value)
	if err != nil || days < MinTrainingDays || days > MaxTrainingDays {
		return models.DefaultMaxTrainingDays, nil
	}
	return days, nil
}

func (s *service) SetMaxTrainingDays(ctx context.Context, days int) error {
	if days < MinTrainingDays || days > MaxTrainingDays {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("max training days must be between %d and %d", MinTrainingDays, MaxTrainingDays))
	}

	desc := "Maximum distinct training days per workout plan"
	cfg := &models.SystemConfig{
		Key:         models.ConfigMaxTrainingDays,
		Value:       strconv.Itoa(days),
		Description: &desc,
	}
	if err := s.repo.Upsert(ctx, cfg); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store max training days")
	}
	return nil
}
