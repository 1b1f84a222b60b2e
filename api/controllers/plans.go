package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/api/middleware"
	"github.com/codegym/gym-manager-backend/api/responses"
	"github.com/codegym/gym-manager-backend/api/validators"
	"github.com/codegym/gym-manager-backend/internal/plans"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
	"github.com/codegym/gym-manager-backend/pkg/logger"
)

type planRowRequest struct {
	ExerciseID string `json:"exercise_id" validate:"required,uuid4"`
	Sets       int    `json:"sets" validate:"required,min=1"`
	Reps       string `json:"reps" validate:"required,max=100"`
	Days       string `json:"days" validate:"required,max=100"`
}

type createPlanRequest struct {
	Notes *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Rows  []planRowRequest `json:"rows" validate:"required,min=1,dive"`
}

// PlanCreate validates and stores a workout plan for the member in the URL.
// The acting trainer is taken from the auth context.
func PlanCreate(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseUUIDParam(r, "memberId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		trainerID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing actor"))
			return
		}

		var req createPlanRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := plans.CreatePlanInput{
			MemberID:  memberID,
			TrainerID: trainerID,
			Notes:     req.Notes,
			Rows:      make([]plans.PlanRowInput, 0, len(req.Rows)),
		}
		for _, row := range req.Rows {
			exerciseID, err := uuid.Parse(row.ExerciseID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid exercise id"))
				return
			}
			input.Rows = append(input.Rows, plans.PlanRowInput{
				ExerciseID: exerciseID,
				Sets:       row.Sets,
				Reps:       row.Reps,
				Days:       row.Days,
			})
		}

		dto, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// PlanList returns a member's plans, newest first.
func PlanList(svc plans.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := parseUUIDParam(r, "memberId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListByMember(r.Context(), memberID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
