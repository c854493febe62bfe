package works

import "time"

type Collection struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"not null" json:"title"`
	TitleEn string `json:"title_en"`

	// Unique at the storage layer so concurrent creates cannot both win;
	// the handler still pre-checks for a friendly 409.
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	ImageURL      string `gorm:"column:image_url" json:"image_url"`

	OrderIndex int `gorm:"not null;default:0" json:"order_index"`
	IsVisible  int `gorm:"not null" json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
