package seeds

import (
	"context"

	"gorm.io/gorm"

	"learnsmate_backend/internals/logger"
	"learnsmate_backend/internals/seeds/admins"
	"learnsmate_backend/internals/seeds/categories"
)

const (
	adminSeedPath    = "internals/seeds/admins/data_admins.json"
	categorySeedPath = "internals/seeds/categories/data_categories.json"
)

// RunAllSeeds is idempotent; rows that already exist are left alone.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	//* Categories
	if err := categories.SeedCategoriesFromJSON(ctx, db, categorySeedPath); err != nil {
		return err
	}

	//* Admins
	n, err := admins.SeedAdminsFromJSON(ctx, db, adminSeedPath)
	if err != nil {
		return err
	}
	logger.Log.WithField("admins_created", n).Info("seeds applied")
	return nil
}
