package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codegym/gym-manager-backend/api/controllers"
	"github.com/codegym/gym-manager-backend/api/middleware"
	"github.com/codegym/gym-manager-backend/internal/auth"
	"github.com/codegym/gym-manager-backend/internal/exercises"
	"github.com/codegym/gym-manager-backend/internal/invoices"
	"github.com/codegym/gym-manager-backend/internal/members"
	"github.com/codegym/gym-manager-backend/internal/packages"
	"github.com/codegym/gym-manager-backend/internal/plans"
	"github.com/codegym/gym-manager-backend/internal/reports"
	"github.com/codegym/gym-manager-backend/internal/settings"
	"github.com/codegym/gym-manager-backend/internal/users"
	"github.com/codegym/gym-manager-backend/pkg/auth/session"
	"github.com/codegym/gym-manager-backend/pkg/config"
	"github.com/codegym/gym-manager-backend/pkg/db"
	"github.com/codegym/gym-manager-backend/pkg/enums"
	"github.com/codegym/gym-manager-backend/pkg/logger"
	"github.com/codegym/gym-manager-backend/pkg/redis"
)

// RouterParams carries everything the HTTP surface needs. All services are
// required; NewRouter does not nil-check because main wires them together.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        db.Pinger
	Redis           *redis.Client
	SessionChecker  session.AccessSessionChecker
	AuthService     auth.Service
	MembersService  members.Service
	InvoicesService invoices.Service
	PlansService    plans.Service
	PackagesService packages.Service
	ExercisesSvc    exercises.Service
	UsersService    users.Service
	SettingsService settings.Service
	ReportsService  reports.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg, logg := p.Config, p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, p.Redis))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Self-service signup from the gym's landing page. No session required;
	// abuse is bounded by the register rate limit.
	r.Route("/api/public", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).
			Post("/register", controllers.MemberRegister(p.MembersService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
		r.With(middleware.Auth(cfg.JWT, p.SessionChecker, logg)).
			Post("/logout", controllers.AuthLogout(p.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

		r.Route("/members", func(r chi.Router) {
			r.With(middleware.RequireRoles(logg, enums.StaffRoleReceptionist, enums.StaffRoleTrainer)).
				Get("/", controllers.MemberList(p.MembersService, logg))
			r.With(middleware.RequireRoles(logg, enums.StaffRoleReceptionist, enums.StaffRoleTrainer)).
				Get("/{memberId}", controllers.MemberDetail(p.MembersService, logg))
			r.With(middleware.RequireRoles(logg, enums.StaffRoleReceptionist)).
				Post("/", controllers.MemberRegister(p.MembersService, logg))

			r.Route("/{memberId}/plans", func(r chi.Router) {
				r.Use(middleware.RequireRoles(logg, enums.StaffRoleTrainer))
				r.Get("/", controllers.PlanList(p.PlansService, logg))
				r.Post("/", controllers.PlanCreate(p.PlansService, logg))
			})
		})

		r.With(middleware.RequireRoles(logg, enums.StaffRoleCashier)).
			Post("/payments", controllers.PaymentRecord(p.InvoicesService, logg))
		r.With(middleware.RequireRoles(logg, enums.StaffRoleCashier)).
			Get("/invoices", controllers.InvoiceHistory(p.InvoicesService, logg))

		r.Route("/reports", func(r chi.Router) {
			r.With(middleware.RequireRoles(logg, enums.StaffRoleCashier)).
				Get("/revenue", controllers.ReportRevenue(p.ReportsService, logg))
			r.With(middleware.RequireRoles(logg, enums.StaffRoleAdmin)).
				Get("/active-members", controllers.ReportActiveMembers(p.ReportsService, logg))
			r.With(middleware.RequireRoles(logg, enums.StaffRoleAdmin)).
				Get("/members-per-package", controllers.ReportMembersPerPackage(p.ReportsService, logg))
		})

		r.Route("/packages", func(r chi.Router) {
			r.Use(middleware.RequireRoles(logg, enums.StaffRoleAdmin))
			r.Get("/", controllers.PackageList(p.PackagesService, logg))
			r.Post("/", controllers.PackageCreate(p.PackagesService, logg))
			r.Put("/{packageId}", controllers.PackageUpdate(p.PackagesService, logg))
			r.Delete("/{packageId}", controllers.PackageDelete(p.PackagesService, logg))
		})

		r.Route("/exercises", func(r chi.Router) {
			r.Use(middleware.RequireRoles(logg, enums.StaffRoleAdmin))
			r.Get("/", controllers.ExerciseList(p.ExercisesSvc, logg))
			r.Post("/", controllers.ExerciseCreate(p.ExercisesSvc, logg))
			r.Put("/{exerciseId}", controllers.ExerciseUpdate(p.ExercisesSvc, logg))
			r.Delete("/{exerciseId}", controllers.ExerciseDelete(p.ExercisesSvc, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireRoles(logg, enums.StaffRoleAdmin))
			r.Get("/", controllers.UserList(p.UsersService, logg))
			r.Post("/", controllers.UserCreate(p.UsersService, logg))
			r.Put("/{userId}", controllers.UserUpdate(p.UsersService, logg))
			r.Post("/{userId}/toggle-active", controllers.UserToggleActive(p.UsersService, logg))
			r.Delete("/{userId}", controllers.UserDelete(p.UsersService, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Use(middleware.RequireRoles(logg, enums.StaffRoleAdmin))
			r.Get("/max-training-days", controllers.SettingsGetMaxTrainingDays(p.SettingsService, logg))
			r.Put("/max-training-days", controllers.SettingsPutMaxTrainingDays(p.SettingsService, logg))
		})
	})

	return r
}
