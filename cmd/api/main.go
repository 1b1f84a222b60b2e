package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codegym/gym-manager-backend/api/routes"
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
	"github.com/codegym/gym-manager-backend/pkg/logger"
	"github.com/codegym/gym-manager-backend/pkg/mailer"
	"github.com/codegym/gym-manager-backend/pkg/migrate"
	"github.com/codegym/gym-manager-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	memberRepo := members.NewRepository(gormDB)
	packageRepo := packages.NewRepository(gormDB)
	invoiceRepo := invoices.NewRepository(gormDB)
	exerciseRepo := exercises.NewRepository(gormDB)
	planRepo := plans.NewRepository(gormDB)
	userRepo := users.NewRepository(gormDB)
	settingRepo := settings.NewRepository(gormDB)
	reportRepo := reports.NewRepository(gormDB)
	mail := mailer.New(cfg.Mail)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	membersService, err := members.NewService(memberRepo, packageRepo, invoiceRepo, dbClient, mail, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create members service", err)
		os.Exit(1)
	}

	invoicesService, err := invoices.NewService(invoiceRepo, memberRepo, packageRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create invoices service", err)
		os.Exit(1)
	}

	settingsService, err := settings.NewService(settingRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	plansService, err := plans.NewService(planRepo, exerciseRepo, memberRepo, settingsService, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create plans service", err)
		os.Exit(1)
	}

	packagesService, err := packages.NewService(packageRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create packages service", err)
		os.Exit(1)
	}

	exercisesService, err := exercises.NewService(exerciseRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create exercises service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(userRepo, planRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	reportsService, err := reports.NewService(reportRepo, invoiceRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create reports service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.RouterParams{
		Config:          cfg,
		Logger:          logg,
		DBPinger:        dbClient,
		Redis:           redisClient,
		SessionChecker:  sessionManager,
		AuthService:     authService,
		MembersService:  membersService,
		InvoicesService: invoicesService,
		PlansService:    plansService,
		PackagesService: packagesService,
		ExercisesSvc:    exercisesService,
		UsersService:    usersService,
		SettingsService: settingsService,
		ReportsService:  reportsService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}

	logg.Info(ctx, "api server shut down gracefully")
}
