package models

import (
	"encoding/json"
	"time"
)

// Item is one sellable menu entry as stored by the backend. Price is the
// displayed price; OriginalPrice and DiscountPercent are raw inputs for the
// pricing resolver and never reach a template. ID is only unique within
// its menu.
type Item struct {
	ID              uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MenuID          uint      `gorm:"primaryKey;autoIncrement:false;index" json:"menu_id"`
	Name            Localized `gorm:"serializer:json;type:text" json:"name"`
	Description     Localized `gorm:"serializer:json;type:text" json:"description"`
	Price           float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice   *float64  `gorm:"type:decimal(10,2)" json:"original_price,omitempty"`
	DiscountPercent *float64  `gorm:"type:decimal(5,2)" json:"discount_percent,omitempty"`
	ImageURL        string    `gorm:"type:varchar(500)" json:"image_url"`
	CategoryID      *uint     `gorm:"index" json:"category_id,omitempty"`
	CategoryLabel   string    `gorm:"type:varchar(120)" json:"category,omitempty"`
	Available       bool      `gorm:"not null" json:"available"`
	SortOrder       int       `gorm:"not null" json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UnmarshalJSON treats an item without "available" as on sale.
func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	v := plain{Available: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = Item(v)
	return nil
}
