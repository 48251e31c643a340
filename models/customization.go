package models

import "time"

// Customization holds the tenant's visual overrides. Exactly one per Menu;
// empty fields mean "use the template default".
type Customization struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MenuID          uint      `gorm:"not null;uniqueIndex" json:"menu_id"`
	PrimaryColor    string    `gorm:"type:varchar(20)" json:"primary_color"`
	SecondaryColor  string    `gorm:"type:varchar(20)" json:"secondary_color"`
	BackgroundColor string    `gorm:"type:varchar(20)" json:"background_color"`
	TextColor       string    `gorm:"type:varchar(20)" json:"text_color"`
	HeroTitle       Localized `gorm:"serializer:json;type:text" json:"hero_title"`
	HeroSubtitle    Localized `gorm:"serializer:json;type:text" json:"hero_subtitle"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CustomizationInput is the editable part of a Customization, used both for
// saves and for unsaved preview drafts. Nil fields are left untouched when
// applied as a draft.
type CustomizationInput struct {
	PrimaryColor    *string   `json:"primary_color"`
	SecondaryColor  *string   `json:"secondary_color"`
	BackgroundColor *string   `json:"background_color"`
	TextColor       *string   `json:"text_color"`
	HeroTitle       Localized `json:"hero_title"`
	HeroSubtitle    Localized `json:"hero_subtitle"`
}
