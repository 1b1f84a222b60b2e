package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

type planRepository interface {
	CreateWithTx(tx *gorm.DB, plan *models.WorkoutPlan) error
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]models.WorkoutPlan, error)
}

type exerciseResolver interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Exercise, error)
}

type memberFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

type maxDaysProvider interface {
	MaxTrainingDays(ctx context.Context) (int, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the trainer's workout plan operations.
type Service interface {
	// Create validates the submission against the configured weekly cap and
	// persists the plan with its details atomically. Nothing is saved when
	// any row is invalid.
	Create(ctx context.Context, input CreatePlanInput) (*PlanDTO, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]PlanDTO, error)
}

type service struct {
	repo      planRepository
	exercises exerciseResolver
	members   memberFinder
	settings  maxDaysProvider
	tx        txRunner
}

// NewService builds a plan service with the provided collaborators.
func NewService(repo planRepository, exercises exerciseResolver, members memberFinder, settings maxDaysProvider, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("plan repository required")
	}
	if exercises == nil {
		return nil, fmt.Errorf("exercise repository required")
	}
	if members == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings service required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		repo:      repo,
		exercises: exercises,
		members:   members,
		settings:  settings,
		tx:        tx,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreatePlanInput) (*PlanDTO, error) {
	if input.TrainerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trainer is required")
	}
	if _, err := s.members.FindByID(ctx, input.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load member")
	}

	known, err := s.resolveExercises(ctx, input.Rows)
	if err != nil {
		return nil, err
	}

	// read the cap at submission time so an admin change applies immediately
	maxDays, err := s.settings.MaxTrainingDays(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]PlanRow, 0, len(input.Rows))
	for _, in := range input.Rows {
		exerciseID := in.ExerciseID
		if _, ok := known[exerciseID]; !ok {
			exerciseID = uuid.Nil
		}
		rows = append(rows, PlanRow{
			ExerciseID: exerciseID,
			Sets:       in.Sets,
			Reps:       in.Reps,
			DayTokens:  in.Days,
		})
	}

	result := ValidatePlan(rows, maxDays)
	if !result.Accepted {
		return nil, validationError(result)
	}

	plan := &models.WorkoutPlan{
		MemberID:  input.MemberID,
		TrainerID: input.TrainerID,
		Notes:     input.Notes,
	}
	for i, in := range input.Rows {
		plan.Details = append(plan.Details, models.WorkoutDetail{
			ExerciseID:  in.ExerciseID,
			Sets:        in.Sets,
			Reps:        in.Reps,
			ScheduleDay: in.Days,
			Position:    i,
		})
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.CreateWithTx(tx, plan)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create plan")
	}

	return FromModel(plan, exerciseNames(known)), nil
}

func (s *service) ListByMember(ctx context.Context, memberID uuid.UUID) ([]PlanDTO, error) {
	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load member")
	}

	rows, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list plans")
	}

	ids := make([]uuid.UUID, 0)
	seen := map[uuid.UUID]struct{}{}
	for _, plan := range rows {
		for _, d := range plan.Details {
			if _, ok := seen[d.ExerciseID]; !ok {
				seen[d.ExerciseID] = struct{}{}
				ids = append(ids, d.ExerciseID)
			}
		}
	}

	names := map[uuid.UUID]string{}
	if len(ids) > 0 {
		known, err := s.exercises.FindByIDs(ctx, ids)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve exercises")
		}
		names = exerciseNames(known)
	}

	out := make([]PlanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i], names))
	}
	return out, nil
}

func (s *service) resolveExercises(ctx context.Context, rows []PlanRowInput) (map[uuid.UUID]models.Exercise, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	seen := map[uuid.UUID]struct{}{}
	for _, row := range rows {
		if row.ExerciseID == uuid.Nil {
			continue
		}
		if _, ok := seen[row.ExerciseID]; ok {
			continue
		}
		seen[row.ExerciseID] = struct{}{}
		ids = append(ids, row.ExerciseID)
	}
	if len(ids) == 0 {
		return map[uuid.UUID]models.Exercise{}, nil
	}

	known, err := s.exercises.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve exercises")
	}
	return known, nil
}

func validationError(result ValidationResult) error {
	details := map[string]any{}
	if len(result.RowErrors) > 0 {
		rowDetails := make([]map[string]any, 0, len(result.RowErrors))
		for _, re := range result.RowErrors {
			rowDetails = append(rowDetails, map[string]any{
				"row":     re.Index,
				"field":   re.Field,
				"message": re.Message,
			})
		}
		details["rows"] = rowDetails
	}

	message := "plan validation failed"
	if result.PlanErr != nil {
		message = result.PlanErr.Error()
	}
	return pkgerrors.New(pkgerrors.CodeValidation, message).WithDetails(details)
}

func exerciseNames(known map[uuid.UUID]models.Exercise) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(known))
	for id, ex := range known {
		names[id] = ex.Name
	}
	return names
}
