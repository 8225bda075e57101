package service

import (
	"context"

	"helpcenter/internal/domain"
)

// ArticleServiceInterface defines article lifecycle, listing, and ordering
// operations. Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List returns one page of a portal's articles matching the filter.
	List(ctx context.Context, portalID string, filter domain.ArticleFilter, page int) (*domain.ArticlePage, error)
	// Get fetches a single article within a portal and records the view.
	Get(ctx context.Context, portalID, id string) (*domain.Article, error)
	// Create persists a new article, always in draft status.
	Create(ctx context.Context, article *domain.Article) error
	// Update applies a partial update and returns the updated article.
	Update(ctx context.Context, portalID, id string, patch domain.ArticlePatch) (*domain.Article, error)
	// Delete permanently removes an article.
	Delete(ctx context.Context, portalID, id string) error
	// Reorder applies a bulk position update per category.
	Reorder(ctx context.Context, portalID string, positions map[string][]string) error
}

// PortalServiceInterface defines portal resolution and category management.
type PortalServiceInterface interface {
	// GetPortal resolves a portal by slug within an account.
	GetPortal(ctx context.Context, accountID, slug string) (*domain.Portal, error)
	// CreatePortal persists a new portal.
	CreatePortal(ctx context.Context, portal *domain.Portal) error
	// ListPortals returns all portals owned by an account.
	ListPortals(ctx context.Context, accountID string) ([]domain.Portal, error)
	// ListCategories returns a portal's categories in position order.
	ListCategories(ctx context.Context, portalID string) ([]domain.Category, error)
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *domain.Category) error
	// DeleteCategory removes a category from a portal.
	DeleteCategory(ctx context.Context, portalID, id string) error
}

// AccountServiceInterface defines the admin dashboard operations over
// accounts.
type AccountServiceInterface interface {
	// List returns one page of accounts matching the search query.
	List(ctx context.Context, query string, page int) ([]domain.Account, domain.PageMeta, error)
	// Get fetches an account by id.
	Get(ctx context.Context, id string) (*domain.Account, error)
	// Create persists a new account.
	Create(ctx context.Context, account *domain.Account) error
	// Update applies a partial update limited to dashboard form attributes.
	Update(ctx context.Context, id string, patch domain.AccountPatch) (*domain.Account, error)
}
