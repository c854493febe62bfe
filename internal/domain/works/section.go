package works

import "time"

// Section is the simpler grouping used by the secondary site variant.
type Section struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"not null" json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	OrderIndex int `gorm:"not null;default:0" json:"order_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
