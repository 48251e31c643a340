package database

import (
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables the menu engine reads and writes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Menu{},
		&models.Category{},
		&models.Item{},
		&models.Branch{},
		&models.Customization{},
	)
	if err != nil {
		return err
	}
	utils.Info(nil).Info("AutoMigrate completed.")
	return nil
}
