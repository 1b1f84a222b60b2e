package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codegym/gym-manager-backend/pkg/config"
	"github.com/codegym/gym-manager-backend/pkg/db"
	"github.com/codegym/gym-manager-backend/pkg/db/models"
	"github.com/codegym/gym-manager-backend/pkg/enums"
	"github.com/codegym/gym-manager-backend/pkg/logger"
	"github.com/codegym/gym-manager-backend/pkg/migrate"
	"github.com/codegym/gym-manager-backend/pkg/security"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|create|validate|seed")
	dir := flag.String("dir", migrate.DefaultDir, "goose migrations directory")
	name := flag.String("name", "", "migration name (for create)")
	version := flag.String("version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(context.Background(), map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
		"dir": *dir,
	})

	// Commands that do NOT require DB
	switch *cmd {
	case "create":
		if *name == "" {
			fmt.Fprintln(os.Stderr, "missing -name for create")
			os.Exit(1)
		}
		path, err := migrate.CreateSQLMigration(*dir, *name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create migration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("created migration:", path)
		return

	case "validate":
		if err := migrate.ValidateDir(*dir); err != nil {
			fmt.Fprintf(os.Stderr, "migration validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("migration validation passed")
		return
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	sqlDB, err := dbClient.DB().DB()
	requireResource(ctx, logg, "sql database", err)

	logg.Info(ctx, "migrate ready")

	switch *cmd {
	case "up":
		if err := migrate.Run(ctx, sqlDB, *dir, "up"); err != nil {
			fmt.Fprintf(os.Stderr, "goose up failed: %v\n", err)
			os.Exit(1)
		}

	case "down":
		if err := migrate.Run(ctx, sqlDB, *dir, "down"); err != nil {
			fmt.Fprintf(os.Stderr, "goose down failed: %v\n", err)
			os.Exit(1)
		}

	case "status":
		if err := migrate.Run(ctx, sqlDB, *dir, "status"); err != nil {
			fmt.Fprintf(os.Stderr, "goose status failed: %v\n", err)
			os.Exit(1)
		}

	case "version":
		if *version == "" {
			fmt.Fprintln(os.Stderr, "missing -version for version command")
			os.Exit(1)
		}
		if err := migrate.MigrateToVersion(ctx, sqlDB, *dir, *version); err != nil {
			fmt.Fprintf(os.Stderr, "goose version migrate failed: %v\n", err)
			os.Exit(1)
		}

	case "seed":
		if cfg.App.IsProd() {
			fmt.Fprintln(os.Stderr, "seed is not available in prod")
			os.Exit(1)
		}
		if err := seed(ctx, dbClient.DB(), cfg.Password); err != nil {
			fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
			os.Exit(1)
		}
		logg.Info(ctx, "seed data applied")

	default:
		fmt.Fprintln(os.Stderr, "unknown -cmd value:", *cmd)
		os.Exit(1)
	}
}

// seed loads a local development dataset: one staff account per role, a few
// packages, and a starter exercise catalog. Re-running is safe; rows conflict
// on their unique names and are skipped.
func seed(ctx context.Context, gdb *gorm.DB, passwordCfg config.PasswordConfig) error {
	staff := []struct {
		username string
		email    string
		role     enums.StaffRole
	}{
		{"admin", "admin@gym.local", enums.StaffRoleAdmin},
		{"reception", "reception@gym.local", enums.StaffRoleReceptionist},
		{"trainer", "trainer@gym.local", enums.StaffRoleTrainer},
		{"cashier", "cashier@gym.local", enums.StaffRoleCashier},
	}

	for _, s := range staff {
		hash, err := security.HashPassword(s.username+"-password", passwordCfg)
		if err != nil {
			return fmt.Errorf("hash seed password for %s: %w", s.username, err)
		}
		user := models.User{
			Username:     s.username,
			Email:        s.email,
			PasswordHash: hash,
			Role:         s.role,
			IsActive:     true,
		}
		if err := gdb.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "username"}}, DoNothing: true}).
			Create(&user).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", s.username, err)
		}
	}

	pkgs := []models.Package{
		{Name: "Monthly", DurationMonths: 1, Price: decimal.RequireFromString("50.00")},
		{Name: "Quarterly", DurationMonths: 3, Price: decimal.RequireFromString("135.00")},
		{Name: "Annual", DurationMonths: 12, Price: decimal.RequireFromString("480.00")},
	}
	for i := range pkgs {
		if err := gdb.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&pkgs[i]).Error; err != nil {
			return fmt.Errorf("seed package %s: %w", pkgs[i].Name, err)
		}
	}

	chest, back, legs := "chest", "back", "legs"
	exercises := []models.Exercise{
		{Name: "Bench Press", BodyPart: &chest},
		{Name: "Deadlift", BodyPart: &back},
		{Name: "Squat", BodyPart: &legs},
		{Name: "Pull Up", BodyPart: &back},
	}
	for i := range exercises {
		if err := gdb.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&exercises[i]).Error; err != nil {
			return fmt.Errorf("seed exercise %s: %w", exercises[i].Name, err)
		}
	}

	return nil
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
