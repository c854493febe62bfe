package exhibitions

import "time"

// Exhibition.Date is free text ("Sep 2023 – Jan 2024"), never parsed.
type Exhibition struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"not null" json:"title"`
	TitleEn  string `json:"title_en"`
	Subtitle string `json:"subtitle"`

	Location string `gorm:"not null" json:"location"`
	Date     string `gorm:"not null" json:"date"`

	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	Info          string `json:"info"`
	InfoEn        string `json:"info_en"`
	Website       string `json:"website"`
	ImageURL      string `gorm:"column:image_url" json:"image_url"`

	Slug string `gorm:"index;not null" json:"slug"`

	OrderIndex int `gorm:"not null;default:0" json:"order_index"`
	IsVisible  int `gorm:"not null" json:"is_visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
