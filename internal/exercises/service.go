package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db"
	"github.com/codegym/gym-manager-backend/pkg/db/models"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

type exerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Exercise, error)
	List(ctx context.Context) ([]models.Exercise, error)
	Update(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountDetails(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service exposes exercise catalog operations.
type Service interface {
	List(ctx context.Context) ([]ExerciseDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ExerciseDTO, error)
	Create(ctx context.Context, input CreateExerciseInput) (*ExerciseDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateExerciseInput) (*ExerciseDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo exerciseRepository
}

// NewService builds an exercise service with the provided repository.
func NewService(repo exerciseRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("exercise repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]ExerciseDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list exercises")
	}
	out := make([]ExerciseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ExerciseDTO, error) {
	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "exercise not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load exercise")
	}
	return FromModel(exercise), nil
}

func (s *service) Create(ctx context.Context, input CreateExerciseInput) (*ExerciseDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	exercise := &models.Exercise{
		Name:        name,
		Description: input.Description,
		BodyPart:    input.BodyPart,
	}
	if err := s.repo.Create(ctx, exercise); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "exercise name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create exercise")
	}
	return FromModel(exercise), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateExerciseInput) (*ExerciseDTO, error) {
	exercise, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "exercise not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load exercise")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
		}
		exercise.Name = name
	}
	if input.Description != nil {
		exercise.Description = input.Description
	}
	if input.BodyPart != nil {
		exercise.BodyPart = input.BodyPart
	}

	if err := s.repo.Update(ctx, exercise); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "exercise name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update exercise")
	}
	return FromModel(exercise), nil
}

// Delete refuses to remove an exercise that workout plans still reference.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "exercise not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load exercise")
	}

	count, err := s.repo.CountDetails(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count exercise usages")
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "exercise is used by workout plans and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete exercise")
	}
	return nil
}
