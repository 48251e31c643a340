package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-studio/models"
	"github.com/yeremiapane/menu-studio/utils"
	"gorm.io/gorm"
)

// SnapshotRepository loads and stores the menu payload the engine renders.
type SnapshotRepository interface {
	FindBySlug(ctx context.Context, slug string) (*models.Snapshot, error)
	ImportSnapshot(ctx context.Context, snapshot *models.Snapshot) (*models.Menu, error)
}

type GormSnapshotRepository struct {
	DB *gorm.DB
}

func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{DB: db}
}

// FindBySlug membaca menu beserta item, kategori, cabang dan customization.
func (r *GormSnapshotRepository) FindBySlug(ctx context.Context, slug string) (*models.Snapshot, error) {
	db := r.DB.WithContext(ctx)

	var menu models.Menu
	if err := db.Where("slug = ?", slug).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("find menu %q: %w", slug, err)
	}

	snap := &models.Snapshot{Menu: &menu, Rating: menu.Rating}
	if err := db.Where("menu_id = ?", menu.ID).Order("sort_order, id").Find(&snap.Items).Error; err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	if err := db.Where("menu_id = ?", menu.ID).Order("sort_order, id").Find(&snap.Categories).Error; err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	if err := db.Where("menu_id = ?", menu.ID).Order("id").Find(&snap.Branches).Error; err != nil {
		return nil, fmt.Errorf("find branches: %w", err)
	}

	var custom models.Customization
	err := db.Where("menu_id = ?", menu.ID).First(&custom).Error
	switch {
	case err == nil:
		snap.Customization = &custom
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("find customization: %w", err)
	}

	return snap, nil
}

// ImportSnapshot replaces a menu's content with the snapshot in one
// transaction. An existing menu keeps its id and slug and can only be
// replaced by its owner. Item and category ids are scoped to the menu.
func (r *GormSnapshotRepository) ImportSnapshot(ctx context.Context, snapshot *models.Snapshot) (*models.Menu, error) {
	if snapshot == nil || snapshot.Menu == nil || strings.TrimSpace(snapshot.Menu.Slug) == "" {
		return nil, ErrInvalidSnapshot
	}

	categories, items, err := scopeSnapshotIDs(snapshot.Categories, snapshot.Items)
	if err != nil {
		return nil, err
	}

	incoming := *snapshot.Menu
	incoming.Slug = strings.TrimSpace(incoming.Slug)
	if snapshot.Rating.Total > 0 {
		incoming.Rating = snapshot.Rating
	}

	var saved models.Menu
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Menu
		err := tx.Where("slug = ?", incoming.Slug).First(&existing).Error
		switch {
		case err == nil:
			if existing.OwnerID != incoming.OwnerID {
				return ErrForbidden
			}
			incoming.ID = existing.ID
			incoming.CreatedAt = existing.CreatedAt
			if err := tx.Save(&incoming).Error; err != nil {
				return fmt.Errorf("update menu: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			incoming.ID = 0
			if err := tx.Create(&incoming).Error; err != nil {
				return fmt.Errorf("create menu: %w", err)
			}
		default:
			return err
		}

		for _, model := range []interface{}{&models.Item{}, &models.Category{}, &models.Branch{}} {
			if err := tx.Where("menu_id = ?", incoming.ID).Delete(model).Error; err != nil {
				return fmt.Errorf("clear menu content: %w", err)
			}
		}

		if len(categories) > 0 {
			for i := range categories {
				categories[i].MenuID = incoming.ID
			}
			if err := tx.Create(&categories).Error; err != nil {
				return fmt.Errorf("create categories: %w", err)
			}
		}
		if len(items) > 0 {
			for i := range items {
				items[i].MenuID = incoming.ID
				if items[i].SortOrder == 0 {
					items[i].SortOrder = i + 1
				}
			}
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("create items: %w", err)
			}
		}
		if len(snapshot.Branches) > 0 {
			branches := make([]models.Branch, len(snapshot.Branches))
			for i, b := range snapshot.Branches {
				b.ID = 0
				b.MenuID = incoming.ID
				branches[i] = b
			}
			if err := tx.Create(&branches).Error; err != nil {
				return fmt.Errorf("create branches: %w", err)
			}
		}

		if snapshot.Customization != nil {
			custom := *snapshot.Customization
			custom.ID = 0
			custom.MenuID = incoming.ID
			if err := tx.Where("menu_id = ?", incoming.ID).Delete(&models.Customization{}).Error; err != nil {
				return err
			}
			if err := tx.Create(&custom).Error; err != nil {
				return fmt.Errorf("create customization: %w", err)
			}
		}

		saved = incoming
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.Info(logrus.Fields{
		"slug":       saved.Slug,
		"owner_id":   saved.OwnerID,
		"items":      len(snapshot.Items),
		"categories": len(snapshot.Categories),
	}).Info("menu snapshot imported")
	return &saved, nil
}

// scopeSnapshotIDs copies the rows and numbers those without an id after the
// highest id in the snapshot. Duplicate ids make the snapshot invalid.
func scopeSnapshotIDs(rawCategories []models.Category, rawItems []models.Item) ([]models.Category, []models.Item, error) {
	categories := append([]models.Category(nil), rawCategories...)
	items := append([]models.Item(nil), rawItems...)

	catIDs := make([]*uint, len(categories))
	for i := range categories {
		catIDs[i] = &categories[i].ID
	}
	if err := assignIDs("category", catIDs); err != nil {
		return nil, nil, err
	}
	itemIDs := make([]*uint, len(items))
	for i := range items {
		itemIDs[i] = &items[i].ID
	}
	if err := assignIDs("item", itemIDs); err != nil {
		return nil, nil, err
	}
	return categories, items, nil
}

func assignIDs(kind string, ids []*uint) error {
	seen := make(map[uint]bool, len(ids))
	var last uint
	for _, id := range ids {
		if *id == 0 {
			continue
		}
		if seen[*id] {
			return fmt.Errorf("%w: duplicate %s id %d", ErrInvalidSnapshot, kind, *id)
		}
		seen[*id] = true
		if *id > last {
			last = *id
		}
	}
	for _, id := range ids {
		if *id == 0 {
			last++
			*id = last
		}
	}
	return nil
}

// MenuOwner returns the user id that owns the menu.
func (r *GormSnapshotRepository) MenuOwner(ctx context.Context, slug string) (uint, error) {
	var menu models.Menu
	err := r.DB.WithContext(ctx).Select("id", "owner_id").Where("slug = ?", slug).First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMenuNotFound
		}
		return 0, fmt.Errorf("find menu owner %q: %w", slug, err)
	}
	return menu.OwnerID, nil
}

// SetTheme stores the menu's chosen template id.
func (r *GormSnapshotRepository) SetTheme(ctx context.Context, slug, templateID string) (*models.Menu, error) {
	var menu models.Menu
	if err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&menu).Update("theme", templateID).Error; err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}
	return &menu, nil
}
