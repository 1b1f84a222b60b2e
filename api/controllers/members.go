package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/api/responses"
	"github.com/codegym/gym-manager-backend/api/validators"
	"github.com/codegym/gym-manager-backend/internal/members"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	"github.com/codegym/gym-manager-backend/pkg/enums"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
	"github.com/codegym/gym-manager-backend/pkg/logger"
)

type registerMemberRequest struct {
	FullName    string `json:"full_name" validate:"required,max=200"`
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Phone       string `json:"phone" validate:"required,max=32"`
	Email       string `json:"email" validate:"required,email"`
	PackageID   string `json:"package_id" validate:"required,uuid4"`
}

func (req registerMemberRequest) toInput() (members.RegisterMemberInput, error) {
	dob, err := dbtypes.ParseDate(strings.TrimSpace(req.DateOfBirth))
	if err != nil {
		return members.RegisterMemberInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date_of_birth must be YYYY-MM-DD")
	}
	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return members.RegisterMemberInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid package id")
	}
	return members.RegisterMemberInput{
		FullName:    validators.SanitizeString(req.FullName, 200),
		Gender:      enums.Gender(strings.ToLower(strings.TrimSpace(req.Gender))),
		DateOfBirth: dob,
		Phone:       validators.SanitizeString(req.Phone, 32),
		Email:       strings.TrimSpace(req.Email),
		PackageID:   packageID,
	}, nil
}

// MemberList returns every member with their computed active flag.
func MemberList(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// MemberDetail returns a single member.
func MemberDetail(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "memberId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dto, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// MemberRegister creates a member together with their first paid invoice.
// It backs both the reception desk form and the public signup page.
func MemberRegister(svc members.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerMemberRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := req.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Register(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}
