package domain

import "time"

// ArticleMeta holds SEO/meta information attached to an article.
type ArticleMeta struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Article represents a help-center article belonging to a portal.
type Article struct {
	ID                  string      `json:"id"`
	PortalID            string      `json:"portal_id"`
	CategoryID          *string     `json:"category_id,omitempty"`
	AuthorID            string      `json:"author_id"`
	AssociatedArticleID *string     `json:"associated_article_id,omitempty"`
	Title               string      `json:"title"`
	Slug                string      `json:"slug"`
	Content             string      `json:"content"`
	Description         *string     `json:"description,omitempty"`
	Locale              string      `json:"locale"`
	Status              string      `json:"status"`
	Position            int         `json:"position"`
	Meta                ArticleMeta `json:"meta"`
	Views               int         `json:"views"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// ArticlePatch carries a partial article update. Nil fields are left
// untouched on the stored record.
type ArticlePatch struct {
	Title               *string      `json:"title,omitempty"`
	Slug                *string      `json:"slug,omitempty"`
	Content             *string      `json:"content,omitempty"`
	Description         *string      `json:"description,omitempty"`
	Locale              *string      `json:"locale,omitempty"`
	Status              *string      `json:"status,omitempty"`
	CategoryID          *string      `json:"category_id,omitempty"`
	AuthorID            *string      `json:"author_id,omitempty"`
	AssociatedArticleID *string      `json:"associated_article_id,omitempty"`
	Meta                *ArticleMeta `json:"meta,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Slug == nil && p.Content == nil &&
		p.Description == nil && p.Locale == nil && p.Status == nil &&
		p.CategoryID == nil && p.AuthorID == nil &&
		p.AssociatedArticleID == nil && p.Meta == nil
}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}
