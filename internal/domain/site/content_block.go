package site

import "time"

// ContentBlock is free-form keyed content (biography, statement, contact
// texts). Blocks are addressed by key, never by id.
type ContentBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key string `gorm:"uniqueIndex;not null" json:"key"`

	Title    string `json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`

	UpdatedAt time.Time `json:"updated_at"`
}
