package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models. The unique index on
// group_code makes creation an atomic unique-insert rather than a
// check-then-insert.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&GroupTrip{},
	)
}
