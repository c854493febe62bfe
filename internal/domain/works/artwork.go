package works

import "time"

// Artwork belongs to exactly one of a collection or a section. Visibility
// and ordering are plain columns; all rules live in the handlers.
type Artwork struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"not null" json:"title"`
	TitleEn string `json:"title_en"`

	Year       string `json:"year"`
	Technique  string `json:"technique"`
	Dimensions string `json:"dimensions"`
	ImageURL   string `gorm:"column:image_url" json:"image_url"`

	CollectionID *uint `gorm:"index" json:"collection_id"`
	SectionID    *uint `gorm:"index" json:"section_id"`

	OrderIndex int `gorm:"not null;default:0" json:"order_index"`
	IsVisible  int `gorm:"not null" json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
