package migrations

import (
	"orderup/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DemoCartID is the cart the bundled front-end opens by default.
const DemoCartID = "DEMO"

var demoMenu = []models.MenuItem{
	{Name: "Cheeseburger", Description: "Beef patty, cheddar, pickles"},
	{Name: "Veggie Wrap", Description: "Grilled vegetables and hummus"},
	{Name: "French Fries", Description: "Salted, skin on"},
	{Name: "Lemonade"},
}

// RunMigrations brings the schema up to date and optionally seeds demo data.
func RunMigrations(db *gorm.DB, seed bool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("running database migrations")
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return err
	}

	if seed {
		if err := SeedDemoData(db, logger); err != nil {
			// Demo data is a convenience; the service runs without it.
			logger.Warn("failed to seed demo data", zap.Error(err))
		}
	}

	logger.Info("database migrations completed")
	return nil
}

// Reset drops every table and recreates the schema.
func Reset(db *gorm.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	all := models.AllModels()
	// dependents first
	reversed := make([]interface{}, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		reversed = append(reversed, all[i])
	}

	logger.Info("dropping existing tables")
	if err := db.Migrator().DropTable(reversed...); err != nil {
		return err
	}

	logger.Info("creating tables")
	return db.AutoMigrate(all...)
}

// SeedDemoData creates the demo menu and the demo cart. Running it again is
// a no-op.
func SeedDemoData(db *gorm.DB, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range demoMenu {
			item := entry
			result := tx.Where(models.MenuItem{Name: item.Name}).
				Attrs(models.MenuItem{Description: item.Description}).
				FirstOrCreate(&item)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				logger.Info("seeded menu item", zap.Uint("item_id", item.ItemID), zap.String("name", item.Name))
			}
		}

		cart := models.Cart{CartID: DemoCartID}
		return tx.Omit("Items").FirstOrCreate(&cart, models.Cart{CartID: DemoCartID}).Error
	})
}
