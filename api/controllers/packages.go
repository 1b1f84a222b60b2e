package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/codegym/gym-manager-backend/api/responses"
	"github.com/codegym/gym-manager-backend/api/validators"
	"github.com/codegym/gym-manager-backend/internal/packages"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
	"github.com/codegym/gym-manager-backend/pkg/logger"
)

type createPackageRequest struct {
	Name           string  `json:"name" validate:"required,max=120"`
	DurationMonths int     `json:"duration_months" validate:"required,min=1"`
	Price          string  `json:"price" validate:"required"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type updatePackageRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,max=120"`
	DurationMonths *int    `json:"duration_months,omitempty" validate:"omitempty,min=1"`
	Price          *string `json:"price,omitempty"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "price must be a decimal number")
	}
	return price, nil
}

func PackageList(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func PackageCreate(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPackageRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		price, err := parsePrice(req.Price)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), packages.CreatePackageInput{
			Name:           req.Name,
			DurationMonths: req.DurationMonths,
			Price:          price,
			Description:    req.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func PackageUpdate(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "packageId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updatePackageRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := packages.UpdatePackageInput{
			Name:           req.Name,
			DurationMonths: req.DurationMonths,
			Description:    req.Description,
		}
		if req.Price != nil {
			price, err := parsePrice(*req.Price)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Price = &price
		}

		dto, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// PackageDelete removes a package. Packages with invoices are protected.
func PackageDelete(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "packageId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
