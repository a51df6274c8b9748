package infra

import (
	"fmt"
	"time"

	"catalog/internal/config"
	"catalog/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the Postgres connection through GORM with driver errors
// translated (duplicate key, foreign key) so repositories can classify them.
// When DB_AUTO_MIGRATE is set it also creates/updates the tables and applies
// the constraints GORM tags cannot express.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         NewGormLogger(200 * time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("AutoMigrate: %w", err)
		}
		if err := applySchemaPatches(db); err != nil {
			return nil, fmt.Errorf("schema patches: %w", err)
		}
	}
	return db, nil
}

// Migrate creates the catalog tables. Every foreign key is RESTRICT on
// delete; the order in which dependents go away is decided by the services.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Supplier{},
		&model.Address{},
		&model.Product{},
	)
}

// applySchemaPatches runs idempotent Postgres DDL that AutoMigrate cannot
// express. Each statement checks for existence first so re-running is a
// no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"products.value non-negative", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_products_value_non_negative') THEN
    ALTER TABLE products ADD CONSTRAINT chk_products_value_non_negative CHECK (value >= 0);
  END IF;
END $$`},
		{"suppliers.kind enum", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_suppliers_kind') THEN
    ALTER TABLE suppliers ADD CONSTRAINT chk_suppliers_kind CHECK (kind IN (1, 2));
  END IF;
END $$`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
