package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codegym/gym-manager-backend/internal/members"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

type stubMembersService struct {
	registered *members.RegisterMemberInput
	dto        *members.MemberDTO
	list       []members.MemberDTO
	err        error
}

func (s *stubMembersService) List(ctx context.Context) ([]members.MemberDTO, error) {
	return s.list, s.err
}

func (s *stubMembersService) GetByID(ctx context.Context, id uuid.UUID) (*members.MemberDTO, error) {
	return s.dto, s.err
}

func (s *stubMembersService) Register(ctx context.Context, input members.RegisterMemberInput) (*members.MemberDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.registered = &input
	return s.dto, nil
}

func TestMemberRegisterCreatesMember(t *testing.T) {
	packageID := uuid.New()
	until := dbtypes.NewDate(2024, time.April, 15)
	svc := &stubMembersService{dto: &members.MemberDTO{
		ID:          uuid.New(),
		FullName:    "Dana Cruz",
		ActiveUntil: &until,
		Active:      true,
	}}

	body := `{"full_name":"Dana Cruz","gender":"female","date_of_birth":"1990-05-01","phone":"555-0101","email":"dana@example.com","package_id":"` + packageID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", strings.NewReader(body))
	rec := httptest.NewRecorder()

	MemberRegister(svc, nil)(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.registered == nil {
		t.Fatal("expected service call")
	}
	if svc.registered.PackageID != packageID {
		t.Fatalf("expected package %s, got %s", packageID, svc.registered.PackageID)
	}
	if svc.registered.DateOfBirth.String() != "1990-05-01" {
		t.Fatalf("unexpected dob %s", svc.registered.DateOfBirth)
	}

	var envelope struct {
		Data members.MemberDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Active {
		t.Fatal("expected active member in response")
	}
}

func TestMemberRegisterRejectsBadDate(t *testing.T) {
	svc := &stubMembersService{}

	body := `{"full_name":"Dana Cruz","gender":"female","date_of_birth":"01/05/1990","phone":"555-0101","email":"dana@example.com","package_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", strings.NewReader(body))
	rec := httptest.NewRecorder()

	MemberRegister(svc, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.registered != nil {
		t.Fatal("service must not be called on invalid input")
	}
}

func TestMemberRegisterRejectsMissingFields(t *testing.T) {
	svc := &stubMembersService{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", strings.NewReader(`{"full_name":"Dana"}`))
	rec := httptest.NewRecorder()

	MemberRegister(svc, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMemberRegisterMapsConflict(t *testing.T) {
	svc := &stubMembersService{err: pkgerrors.New(pkgerrors.CodeConflict, "a member with this email already exists")}

	body := `{"full_name":"Dana Cruz","gender":"female","date_of_birth":"1990-05-01","phone":"555-0101","email":"dana@example.com","package_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", strings.NewReader(body))
	rec := httptest.NewRecorder()

	MemberRegister(svc, nil)(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestMemberListWritesEnvelope(t *testing.T) {
	svc := &stubMembersService{list: []members.MemberDTO{{FullName: "A"}, {FullName: "B"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	rec := httptest.NewRecorder()

	MemberList(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data []members.MemberDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 members, got %d", len(envelope.Data))
	}
}
