package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codegym/gym-manager-backend/pkg/config"
	"github.com/codegym/gym-manager-backend/pkg/db/models"
	"github.com/codegym/gym-manager-backend/pkg/enums"
	pkgerrors "github.com/codegym/gym-manager-backend/pkg/errors"
)

type stubUserRepo struct {
	users   map[uuid.UUID]*models.User
	err     error
	created *models.User
	updated *models.User
	deleted []uuid.UUID
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	user.ID = uuid.New()
	s.created = user
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) List(ctx context.Context) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	s.updated = user
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubPlanCounter struct {
	count int64
	err   error
}

func (s *stubPlanCounter) CountByTrainer(ctx context.Context, trainerID uuid.UUID) (int64, error) {
	return s.count, s.err
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func seedUser(role enums.StaffRole) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "sam",
		Email:    "sam@gym.test",
		Role:     role,
		IsActive: true,
	}
}

func TestUsersCreateHashesPassword(t *testing.T) {
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{}}
	svc, err := NewService(repo, &stubPlanCounter{}, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateUserInput{
		Username: " desk1 ",
		Email:    "Desk@Gym.Test",
		Password: "letmein-please",
		Role:     enums.StaffRoleReceptionist,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Username != "desk1" || dto.Email != "desk@gym.test" {
		t.Fatalf("expected normalized identity, got %q %q", dto.Username, dto.Email)
	}
	if repo.created.PasswordHash == "" || repo.created.PasswordHash == "letmein-please" {
		t.Fatal("password must be stored hashed")
	}
	if !repo.created.IsActive {
		t.Fatal("new staff should start active")
	}
}

func TestUsersCreateValidates(t *testing.T) {
	svc, _ := NewService(&stubUserRepo{}, &stubPlanCounter{}, testPasswordConfig())

	cases := []struct {
		name  string
		input CreateUserInput
	}{
		{"blank username", CreateUserInput{Username: " ", Email: "a@b.c", Password: "longenough", Role: enums.StaffRoleTrainer}},
		{"bad email", CreateUserInput{Username: "u", Email: "nope", Password: "longenough", Role: enums.StaffRoleTrainer}},
		{"bad role", CreateUserInput{Username: "u", Email: "a@b.c", Password: "longenough", Role: enums.StaffRole("janitor")}},
		{"short password", CreateUserInput{Username: "u", Email: "a@b.c", Password: "short", Role: enums.StaffRoleTrainer}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUsersToggleActiveRejectsSelf(t *testing.T) {
	admin := seedUser(enums.StaffRoleAdmin)
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{admin.ID: admin}}
	svc, _ := NewService(repo, &stubPlanCounter{}, testPasswordConfig())

	_, err := svc.ToggleActive(context.Background(), admin.ID, admin.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if repo.updated != nil {
		t.Fatal("self toggle must not reach the repo")
	}
}

func TestUsersToggleActiveFlips(t *testing.T) {
	target := seedUser(enums.StaffRoleCashier)
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{target.ID: target}}
	svc, _ := NewService(repo, &stubPlanCounter{}, testPasswordConfig())

	dto, err := svc.ToggleActive(context.Background(), uuid.New(), target.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if dto.IsActive {
		t.Fatal("expected account to be deactivated")
	}
}

func TestUsersDeleteRejectsSelf(t *testing.T) {
	admin := seedUser(enums.StaffRoleAdmin)
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{admin.ID: admin}}
	svc, _ := NewService(repo, &stubPlanCounter{}, testPasswordConfig())

	err := svc.Delete(context.Background(), admin.ID, admin.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("self delete must not reach the repo")
	}
}

func TestUsersDeleteGuardsTrainerPlans(t *testing.T) {
	trainer := seedUser(enums.StaffRoleTrainer)
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{trainer.ID: trainer}}
	svc, _ := NewService(repo, &stubPlanCounter{count: 3}, testPasswordConfig())

	err := svc.Delete(context.Background(), uuid.New(), trainer.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatal("trainer with plans must not be deleted")
	}
}

func TestUsersDeleteTrainerWithoutPlans(t *testing.T) {
	trainer := seedUser(enums.StaffRoleTrainer)
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{trainer.ID: trainer}}
	svc, _ := NewService(repo, &stubPlanCounter{count: 0}, testPasswordConfig())

	if err := svc.Delete(context.Background(), uuid.New(), trainer.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected one delete, got %d", len(repo.deleted))
	}
}

func TestUsersUpdateProtectsOwnAdminRole(t *testing.T) {
	admin := seedUser(enums.StaffRoleAdmin)
	repo := &stubUserRepo{users: map[uuid.UUID]*models.User{admin.ID: admin}}
	svc, _ := NewService(repo, &stubPlanCounter{}, testPasswordConfig())

	role := enums.StaffRoleTrainer
	_, err := svc.Update(context.Background(), admin.ID, admin.ID, UpdateUserInput{Role: &role})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUsersUpdateNotFound(t *testing.T) {
	svc, _ := NewService(&stubUserRepo{users: map[uuid.UUID]*models.User{}}, &stubPlanCounter{}, testPasswordConfig())

	email := "new@gym.test"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateUserInput{Email: &email})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
