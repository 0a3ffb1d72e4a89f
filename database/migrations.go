package database

import (
	"log/slog"

	"github.com/l3montree-dev/crossguard/database/models"
	"gorm.io/gorm"
)

// RunMigrationsWithDB brings the schema up to date using an existing GORM
// database instance. Catalog content is NOT seeded here - seeding is an
// offline, idempotent CLI operation.
func RunMigrationsWithDB(db *gorm.DB) error {
	slog.Info("running schema migrations")

	return db.AutoMigrate(
		&models.Framework{},
		&models.CanonicalProcess{},
		&models.SubProcess{},
		&models.Tenant{},
		&models.TenantFramework{},
		&models.Control{},
		&models.UniversalIntent{},
		&models.IntentStatusEvent{},
		&models.IntentFrameworkCrosswalk{},
		&models.Evidence{},
		&models.ComplianceResult{},
		&models.Config{},
	)
}
