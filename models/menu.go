package models

import "time"

// Menu is the tenant's published menu. Slug is immutable once created and
// only OwnerID may change its content or appearance.
type Menu struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	Slug              string        `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`
	OwnerID           uint          `gorm:"index;not null" json:"owner_id"`
	Name              Localized     `gorm:"serializer:json;type:text" json:"name"`
	Description       Localized     `gorm:"serializer:json;type:text" json:"description"`
	Theme             string        `gorm:"type:varchar(60)" json:"theme"`
	Active            bool          `gorm:"not null" json:"active"`
	Currency          string        `gorm:"type:varchar(8)" json:"currency"`
	LogoURL           string        `gorm:"type:varchar(500)" json:"logo_url"`
	FooterDescription Localized     `gorm:"serializer:json;type:text" json:"footer_description"`
	SocialLinks       SocialLinks   `gorm:"serializer:json;type:text" json:"social_links"`
	Rating            RatingSummary `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// SocialLinks maps a network name ("instagram", "whatsapp") to a URL.
type SocialLinks map[string]string

// RatingSummary diproduksi oleh layanan rating eksternal, hanya dibaca di sini.
type RatingSummary struct {
	Average float64 `gorm:"type:decimal(3,2)" json:"average"`
	Total   int     `json:"total"`
}
