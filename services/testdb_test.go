package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory sqlite database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Menu{}, &models.Category{}, &models.Item{}, &models.Branch{}, &models.Customization{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func sampleSnapshot(slug string) *models.Snapshot {
	return &models.Snapshot{
		Menu: &models.Menu{
			Slug:     slug,
			Name:     models.Localized{"en": "Bean There", "ar": "كنا هناك"},
			Theme:    "cafe",
			Active:   true,
			Currency: "USD",
			Rating:   models.RatingSummary{Average: 4.2, Total: 10},
		},
		Categories: []models.Category{
			{ID: 10, Name: models.Localized{"en": "Hot drinks"}, SortOrder: 1, Active: true},
			{ID: 11, Name: models.Localized{"en": "Bakery"}, SortOrder: 2, Active: true},
		},
		Items: []models.Item{
			{ID: 100, Name: models.Localized{"en": "Flat White"}, Price: 4.5, CategoryID: uptr(10), Available: true},
			{ID: 101, Name: models.Localized{"en": "Croissant"}, OriginalPrice: f64(3), DiscountPercent: f64(10), CategoryID: uptr(11), Available: true},
			{ID: 102, Name: models.Localized{"en": "Orange Juice"}, Price: 5, CategoryLabel: "Cold", Available: false},
		},
		Branches: []models.Branch{
			{Name: "Downtown", Address: "1 Main St", Phone: "+1 555 0100", Latitude: 1.5, Longitude: 2.5},
		},
	}
}
