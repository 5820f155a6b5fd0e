package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every persisted model.
//
// On PostgreSQL an exclusion constraint backs the application-level
// availability check, so two racing writers cannot double-book the same
// property-days. SQLite has no equivalent; there the application check
// is the only guard, which is fine for single-process development.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&propertyModel{},
		&reservationModel{},
		&expenseModel{},
		&paymentModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_double_booking'
			) THEN
				ALTER TABLE reservations ADD CONSTRAINT idx_no_double_booking
					EXCLUDE USING gist (
						property_id WITH =,
						daterange(start_date::date, end_date::date, '[]') WITH &&
					) WHERE (status <> 'cancelled');
			END IF;
		END
		$$;
	`).Error
}
