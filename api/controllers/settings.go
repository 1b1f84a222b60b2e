package controllers

import (
	"net/http"

	"github.com/codegym/gym-manager-backend/api/responses"
	"github.com/codegym/gym-manager-backend/api/validators"
	"github.com/codegym/gym-manager-backend/internal/settings"
	"github.com/codegym/gym-manager-backend/pkg/logger"
)

type maxTrainingDaysRequest struct {
	MaxTrainingDays int `json:"max_training_days" validate:"required,min=1,max=7"`
}

func SettingsGetMaxTrainingDays(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := svc.MaxTrainingDays(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"max_training_days": days})
	}
}

// SettingsPutMaxTrainingDays updates the weekly training-day cap. The new
// value applies to the next plan submission.
func SettingsPutMaxTrainingDays(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req maxTrainingDaysRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetMaxTrainingDays(r.Context(), req.MaxTrainingDays); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"max_training_days": req.MaxTrainingDays})
	}
}
