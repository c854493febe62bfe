package works

// Update requests use pointer fields so a key that is absent from the JSON
// body leaves the column untouched, while a present key overwrites it —
// including with an empty value.

type CreateArtworkRequest struct {
	Title        string `json:"title"`
	TitleEn      string `json:"title_en"`
	Year         string `json:"year"`
	Technique    string `json:"technique"`
	Dimensions   string `json:"dimensions"`
	ImageURL     string `json:"image_url"`
	CollectionID *uint  `json:"collection_id"`
	SectionID    *uint  `json:"section_id"`
	OrderIndex   int    `json:"order_index"`
	IsVisible    *int   `json:"is_visible"`
}

type UpdateArtworkRequest struct {
	Title        *string `json:"title"`
	TitleEn      *string `json:"title_en"`
	Year         *string `json:"year"`
	Technique    *string `json:"technique"`
	Dimensions   *string `json:"dimensions"`
	ImageURL     *string `json:"image_url"`
	CollectionID *uint   `json:"collection_id"`
	SectionID    *uint   `json:"section_id"`
	OrderIndex   *int    `json:"order_index"`
	IsVisible    *int    `json:"is_visible"`
}

func (r UpdateArtworkRequest) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.TitleEn != nil {
		updates["title_en"] = *r.TitleEn
	}
	if r.Year != nil {
		updates["year"] = *r.Year
	}
	if r.Technique != nil {
		updates["technique"] = *r.Technique
	}
	if r.Dimensions != nil {
		updates["dimensions"] = *r.Dimensions
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.CollectionID != nil {
		updates["collection_id"] = *r.CollectionID
	}
	if r.SectionID != nil {
		updates["section_id"] = *r.SectionID
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	if r.IsVisible != nil {
		updates["is_visible"] = *r.IsVisible
	}
	return updates
}

type CreateSectionRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type UpdateSectionRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

func (r UpdateSectionRequest) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	return updates
}

type CreateCollectionRequest struct {
	Title         string `json:"title"`
	TitleEn       string `json:"title_en"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	DescriptionEn string `json:"description_en"`
	ImageURL      string `json:"image_url"`
	OrderIndex    int    `json:"order_index"`
	IsVisible     *int   `json:"is_visible"`
}

type UpdateCollectionRequest struct {
	Title         *string `json:"title"`
	TitleEn       *string `json:"title_en"`
	Slug          *string `json:"slug"`
	Description   *string `json:"description"`
	DescriptionEn *string `json:"description_en"`
	ImageURL      *string `json:"image_url"`
	OrderIndex    *int    `json:"order_index"`
	IsVisible     *int    `json:"is_visible"`
}

func (r UpdateCollectionRequest) changes() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.TitleEn != nil {
		updates["title_en"] = *r.TitleEn
	}
	if r.Slug != nil {
		updates["slug"] = *r.Slug
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.DescriptionEn != nil {
		updates["description_en"] = *r.DescriptionEn
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.OrderIndex != nil {
		updates["order_index"] = *r.OrderIndex
	}
	if r.IsVisible != nil {
		updates["is_visible"] = *r.IsVisible
	}
	return updates
}
