package press

import "time"

// Critic holds a piece of critical commentary shown on the press page.
type Critic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"not null" json:"name"`
	Role   string `gorm:"not null" json:"role"`
	RoleEn string `json:"role_en"`

	Text   string `gorm:"type:text;not null" json:"text"`
	TextEn string `gorm:"type:text" json:"text_en"`

	OrderIndex int `gorm:"not null;default:0" json:"order_index"`
	IsVisible  int `gorm:"not null" json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
