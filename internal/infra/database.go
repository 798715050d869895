package infra

import (
	"fmt"

	"tindahan/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate,
// then applies idempotent SQL patches for constraints GORM cannot express.
// TranslateError is enabled so unique violations surface as
// gorm.ErrDuplicatedKey, which the service layer maps to domain errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Order{},
		&model.OrderItem{},
		&model.StockRequest{},
		&model.SalesReport{},
		&model.ReportProduct{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches creates the constraints AutoMigrate cannot declare.
// Every statement is guarded so re-running on an already-patched schema is a
// no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Name uniqueness holds only among non-archived items: a partial
		// unique index makes the check-and-insert atomic at the store, so two
		// concurrent creates (or a create racing a restore) cannot both win.
		{
			"partial unique index on active item names",
			`CREATE UNIQUE INDEX IF NOT EXISTS uniq_items_active_name
			 ON items (LOWER(name)) WHERE is_archived = false`,
		},
		// Quantity can never go negative, even through a raw UPDATE.
		{
			"non-negative quantity check on items",
			`DO $$ BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint WHERE conname = 'chk_items_quantity_nonneg'
				) THEN
					ALTER TABLE items ADD CONSTRAINT chk_items_quantity_nonneg CHECK (quantity >= 0);
				END IF;
			END $$`,
		},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("%s: %w", p.descr, err)
		}
	}
	return nil
}
