package models

import (
	"encoding/json"
	"time"
)

// Category groups items of one Menu. ID is the backend's id and is only
// unique within its menu. Deleting a category does not cascade to items;
// they keep a dangling CategoryID.
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MenuID    uint      `gorm:"primaryKey;autoIncrement:false;index" json:"menu_id"`
	Name      Localized `gorm:"serializer:json;type:text" json:"name"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"image_url"`
	SortOrder int       `gorm:"not null" json:"sort_order"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnmarshalJSON: kategori tanpa field "active" dianggap aktif.
func (c *Category) UnmarshalJSON(data []byte) error {
	type plain Category
	v := plain{Active: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Category(v)
	return nil
}
