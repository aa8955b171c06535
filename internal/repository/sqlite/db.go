package sqlite

import (
	"fitcoach/fitness-platform/internal/domain"

	driver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database at the given path and migrates the
// schema. Migration is idempotent, so calling this on every startup is
// safe.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(driver.Open(path), &gorm.Config{
		// Translate driver errors so unique-constraint violations surface
		// as gorm.ErrDuplicatedKey instead of raw sqlite errors.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.Trainer{}, &domain.Client{}); err != nil {
		return nil, err
	}

	return db, nil
}
