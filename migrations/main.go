package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
}

type Migrator interface {
	Up() error
	Down() error
}

// RunMigrations applies the schema migrations in order. Each migration is
// recorded in schema_migrations and skipped on subsequent runs.
func RunMigrations(db *gorm.DB, logger Logger, direction string) error {
	if err := initializeMigrationTable(db); err != nil {
		return fmt.Errorf("failed to initialize migration table: %v", err)
	}

	migrations := []struct {
		Name     string
		Migrator Migrator
	}{
		{"001_create_profiles.go", NewProfileMigration(db)},
		{"002_create_videos.go", NewVideoMigration(db)},
	}

	if direction == "up" {
		for i, migration := range migrations {
			applied, err := hasMigrationBeenApplied(db, migration.Name)
			if err != nil {
				return fmt.Errorf("failed to check migration status: %v", err)
			}
			if applied {
				logger.LogInfo("Migration already applied", map[string]interface{}{
					"migration": migration.Name,
				})
				continue
			}

			logger.LogInfo("Running migration up", map[string]interface{}{
				"index": i + 1,
				"name":  migration.Name,
			})
			if err := migration.Migrator.Up(); err != nil {
				return fmt.Errorf("failed to run migration %d up: %v", i+1, err)
			}
			if err := recordMigration(db, migration.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %v", i+1, err)
			}
		}
		return nil
	}

	for i := len(migrations) - 1; i >= 0; i-- {
		logger.LogInfo("Running migration down", map[string]interface{}{
			"index": i + 1,
			"name":  migrations[i].Name,
		})
		if err := migrations[i].Migrator.Down(); err != nil {
			return fmt.Errorf("failed to run migration %d down: %v", i+1, err)
		}
		if err := removeMigrationRecord(db, migrations[i].Name); err != nil {
			return fmt.Errorf("failed to remove migration record %d: %v", i+1, err)
		}
	}
	return nil
}

func initializeMigrationTable(db *gorm.DB) error {
	return db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`).Error
}

func hasMigrationBeenApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Table("schema_migrations").Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func recordMigration(db *gorm.DB, name string) error {
	return db.Exec("INSERT INTO schema_migrations (name) VALUES (?)", name).Error
}

func removeMigrationRecord(db *gorm.DB, name string) error {
	return db.Exec("DELETE FROM schema_migrations WHERE name = ?", name).Error
}
