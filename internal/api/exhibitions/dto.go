package exhibitions

type CreateExhibitionRequest struct {
	Title         string `json:"title"`
	TitleEn       string `json:"title_en"`
	Subtitle      string `json:"subtitle"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	Info          string `json:"info"`
	InfoEn        string `json:"info_en"`
	Website       string `json:"website"`
	ImageURL      string `json:"image_url"`
	Slug          string `json:"slug"`
	OrderIndex    int    `json:"order_index"`
	IsVisible     *int   `json:"is_visible"`
}

type UpdateExhibitionRequest struct {
	Title         *string `json:"title"`
	TitleEn       *string `json:"title_en"`
	Subtitle      *string `json:"subtitle"`
	Location      *string `json:"location"`
	Date          *string `json:"date"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	Info          *string `json:"info"`
	InfoEn        *string `json:"info_en"`
	Website       *string `json:"website"`
	ImageURL      *string `json:"image_url"`
	Slug          *string `json:"slug"`
	OrderIndex    *int    `json:"order_index"`
	IsVisible     *int    `json:"is_visible"`
}

func (r UpdateExhibitionRequest) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.TitleEn != nil {
		updates["title_en"] = *r.TitleEn
	}
	if r.Subtitle != nil {
		updates["subtitle"] = *r.Subtitle
	}
	if r.Location != nil {
		updates["location"] = *r.Location
	}
	if r.Date != nil {
		updates["date"] = *r.Date
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.DescriptionEn != nil {
		updates["description_en"] = *r.DescriptionEn
	}
	if r.Info != nil {
		updates["info"] = *r.Info
	}
	if r.InfoEn != nil {
		updates["info_en"] = *r.InfoEn
	}
	if r.Website != nil {
		updates["website"] = *r.Website
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	if r.IsVisible != nil {
		updates["is_visible"] = *r.IsVisible
	}
	return updates
}
