package database

import (
	"fmt"
	"log/slog"

	"github.com/onemapafrica/member-hub-api/internal/config"
	"github.com/onemapafrica/member-hub-api/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("database migration starting - all tables will be dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is not allowed in production")
	}

	slog.Info("dropping existing tables")

	// Order matters: drop in reverse dependency order (FK constraints)
	tableNames := []string{"card_event", "card", "signature", "asset", "transaction", "member", "admin_user"}

	for _, tableName := range tableNames {
		if !db.Migrator().HasTable(tableName) {
			continue
		}
		if err := db.Migrator().DropTable(tableName); err != nil {
			slog.Debug("table drop failed", "table", tableName, "error", err)
		} else {
			slog.Debug("table dropped", "table", tableName)
		}
	}

	slog.Info("creating tables")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("migration complete")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// Create in dependency order: independent tables first, FK holders after.
	models := []interface{}{
		&model.AdminUser{},
		&model.Member{},
		&model.Transaction{},
		&model.Asset{},
		&model.Signature{},
		&model.Card{},
		&model.CardEvent{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table created", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
