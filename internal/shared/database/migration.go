package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/mediatheque-api/internal/config"
	"github.com/changhyeonkim/mediatheque-api/internal/model"

	"gorm.io/gorm"
)

// Models lists every table in dependency order (referenced tables first)
func Models() []interface{} {
	return []interface{}{
		// Independent tables (no foreign keys)
		&model.Member{},
		&model.CD{},
		&model.DVD{},
		&model.Book{},
		&model.BoardGame{},
		// loan references member
		&model.Loan{},
	}
}

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("database migration started - all tables are dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.IsProduction() {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is not allowed in production")
	}

	slog.Info("dropping existing tables")

	// drop in reverse dependency order (FK constraints)
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Migrator().DropTable(m); err != nil {
			slog.Debug("drop table failed", "model", fmt.Sprintf("%T", m), "error", err)
		} else {
			slog.Debug("table dropped", "model", fmt.Sprintf("%T", m))
		}
	}

	slog.Info("creating tables")
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("migration completed")
	return nil
}

// AutoMigrate creates tables based on model definitions
func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table migrated", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
