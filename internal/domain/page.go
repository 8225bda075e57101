package domain

// ArticleFilter narrows a portal's article listing. Zero-valued fields
// impose no constraint.
type ArticleFilter struct {
	Query        string `json:"query,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
	Status       string `json:"status,omitempty"`
	AuthorID     string `json:"author_id,omitempty"`
	Locale       string `json:"locale,omitempty"`
}

// PageMeta describes pagination metadata for a listing response.
type PageMeta struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// ArticlePage is one page of a filtered article listing.
type ArticlePage struct {
	Articles []Article `json:"articles"`
	Meta     PageMeta  `json:"meta"`
}

// NewPageMeta computes page-count metadata from a pre-slice total.
func NewPageMeta(totalCount, pageSize, currentPage int) PageMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PageMeta{
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	}
}
