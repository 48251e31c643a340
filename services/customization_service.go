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

const (
	EventCustomizationSaved = "customization_saved"
	EventCustomizationReset = "customization_reset"
)

// SnapshotInvalidator drops cached snapshots after a write.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context, slug string)
}

// Broadcaster pushes an event to the open previews of a menu.
type Broadcaster interface {
	Broadcast(slug, event string, data interface{}) int
}

// CustomizationService persists the one Customization record of each menu.
// Cache and Events are optional.
type CustomizationService struct {
	DB     *gorm.DB
	Cache  SnapshotInvalidator
	Events Broadcaster
}

func NewCustomizationService(db *gorm.DB, cache SnapshotInvalidator, events Broadcaster) *CustomizationService {
	return &CustomizationService{DB: db, Cache: cache, Events: events}
}

func (s *CustomizationService) menuBySlug(ctx context.Context, slug string) (*models.Menu, error) {
	var menu models.Menu
	if err := s.DB.WithContext(ctx).Where("slug = ?", slug).First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("find menu %q: %w", slug, err)
	}
	return &menu, nil
}

// Get returns the menu's customization, creating the blank system-default
// record on first access.
func (s *CustomizationService) Get(ctx context.Context, slug string) (*models.Customization, error) {
	menu, err := s.menuBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.ensure(s.DB.WithContext(ctx), menu.ID)
}

func (s *CustomizationService) ensure(db *gorm.DB, menuID uint) (*models.Customization, error) {
	var custom models.Customization
	if err := db.Where(models.Customization{MenuID: menuID}).FirstOrCreate(&custom).Error; err != nil {
		return nil, fmt.Errorf("load customization: %w", err)
	}
	return &custom, nil
}

// Save replaces the whole record with input. Unset fields become empty,
// i.e. they fall back to the template default.
func (s *CustomizationService) Save(ctx context.Context, slug string, input models.CustomizationInput) (*models.Customization, error) {
	colors := map[string]*string{
		"primary_color":    input.PrimaryColor,
		"secondary_color":  input.SecondaryColor,
		"background_color": input.BackgroundColor,
		"text_color":       input.TextColor,
	}
	for field, v := range colors {
		if v != nil && !ValidColor(*v) {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidColor, field, *v)
		}
	}

	menu, err := s.menuBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var saved *models.Customization
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.ensure(tx, menu.ID)
		if err != nil {
			return err
		}
		current.PrimaryColor = strValue(input.PrimaryColor)
		current.SecondaryColor = strValue(input.SecondaryColor)
		current.BackgroundColor = strValue(input.BackgroundColor)
		current.TextColor = strValue(input.TextColor)
		current.HeroTitle = input.HeroTitle.Clone()
		current.HeroSubtitle = input.HeroSubtitle.Clone()
		if err := tx.Save(current).Error; err != nil {
			return fmt.Errorf("save customization: %w", err)
		}
		saved = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, slug, EventCustomizationSaved, saved)
	return saved, nil
}

// Reset restores the system default by deleting the record and creating a
// blank one.
func (s *CustomizationService) Reset(ctx context.Context, slug string) (*models.Customization, error) {
	menu, err := s.menuBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var fresh *models.Customization
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.Customization{}).Error; err != nil {
			return fmt.Errorf("delete customization: %w", err)
		}
		custom, err := s.ensure(tx, menu.ID)
		if err != nil {
			return err
		}
		fresh = custom
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, slug, EventCustomizationReset, fresh)
	return fresh, nil
}

func (s *CustomizationService) afterWrite(ctx context.Context, slug, event string, custom *models.Customization) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, slug)
	}
	sent := 0
	if s.Events != nil {
		sent = s.Events.Broadcast(slug, event, custom)
	}
	utils.Info(logrus.Fields{"slug": slug, "event": event, "previews": sent}).Info("customization updated")
}

func strValue(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
