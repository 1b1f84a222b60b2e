package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/api/responses"
	"github.com/codegym/gym-manager-backend/api/validators"
	"github.com/codegym/gym-manager-backend/internal/invoices"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
	"github.com/codegym/gym-manager-backend/pkg/logger"
	"github.com/codegym/gym-manager-backend/pkg/pagination"
)

type recordPaymentRequest struct {
	MemberID  string `json:"member_id" validate:"required,uuid4"`
	PackageID string `json:"package_id" validate:"required,uuid4"`
}

// PaymentRecord books a package payment: one immutable invoice plus the
// membership extension it pays for.
func PaymentRecord(svc invoices.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordPaymentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		memberID, err := uuid.Parse(req.MemberID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid member id"))
			return
		}
		packageID, err := uuid.Parse(req.PackageID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid package id"))
			return
		}

		receipt, err := svc.RecordPayment(r.Context(), memberID, packageID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}

// InvoiceHistory lists invoices with optional member and date filters,
// paginated by cursor.
func InvoiceHistory(svc invoices.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := pagination.Params{
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}
		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params.Limit = limit

		filter := invoices.HistoryFilter{}
		if raw := strings.TrimSpace(r.URL.Query().Get("member_id")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid member id"))
				return
			}
			filter.MemberID = &id
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("start_date")); raw != "" {
			d, err := dbtypes.ParseDate(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "start_date must be YYYY-MM-DD"))
				return
			}
			filter.StartDate = &d
		}
		if raw := strings.TrimSpace(r.URL.Query().Get("end_date")); raw != "" {
			d, err := dbtypes.ParseDate(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "end_date must be YYYY-MM-DD"))
				return
			}
			filter.EndDate = &d
		}

		page, err := svc.History(r.Context(), params, filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
