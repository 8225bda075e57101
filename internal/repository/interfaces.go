package repository

import (
	"context"

	"helpcenter/internal/domain"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, portalID, id string) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, portalID, id string) error
	Search(ctx context.Context, portalID string, filter domain.ArticleFilter, limit, offset int) ([]domain.Article, int, error)
	UpdatePositions(ctx context.Context, portalID string, positions map[string][]string) error
	SetAssociatedArticle(ctx context.Context, portalID, id, rootID string) error
	IncrementViews(ctx context.Context, id string) error
}

// PortalRepository defines methods for portal data access.
type PortalRepository interface {
	Create(ctx context.Context, portal *domain.Portal) error
	GetBySlug(ctx context.Context, accountID, slug string) (*domain.Portal, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Portal, error)
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetBySlug(ctx context.Context, portalID, slug string) (*domain.Category, error)
	ListByPortal(ctx context.Context, portalID string) ([]domain.Category, error)
	Delete(ctx context.Context, portalID, id string) error
}

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Account, int, error)
}
