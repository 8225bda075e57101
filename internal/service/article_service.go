package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"helpcenter/internal/domain"
	"helpcenter/internal/logger"
	"helpcenter/internal/metrics"
	"helpcenter/internal/repository"
	"helpcenter/internal/validator"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// ArticleService implements article lifecycle, listing/search, and bulk
// position reordering for a portal.
type ArticleService struct {
	articles  repository.ArticleRepository
	validator *validator.Validator

	pageSize      int
	defaultLocale string
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository, v *validator.Validator, pageSize int, defaultLocale string) *ArticleService {
	return &ArticleService{
		articles:      articles,
		validator:     v,
		pageSize:      pageSize,
		defaultLocale: defaultLocale,
	}
}

// List returns one page of a portal's articles matching the filter. The
// total count is computed before slicing, so a page past the end yields an
// empty list with truthful metadata.
func (s *ArticleService) List(ctx context.Context, portalID string, filter domain.ArticleFilter, page int) (*domain.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.pageSize

	articles, total, err := s.articles.Search(ctx, portalID, filter, s.pageSize, offset)
	metrics.ObserveArticleOperation("list", err)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	metrics.ArticleSearchResults.Observe(float64(total))

	return &domain.ArticlePage{
		Articles: articles,
		Meta:     domain.NewPageMeta(total, s.pageSize, page),
	}, nil
}

// Get fetches a single article scoped to a portal and records the view.
func (s *ArticleService) Get(ctx context.Context, portalID, id string) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, portalID, id)
	metrics.ObserveArticleOperation("show", err)
	if err != nil {
		return nil, err
	}

	if err := s.articles.IncrementViews(ctx, article.ID); err != nil {
		logger.Warn("Failed to record article view",
			slog.String("article_id", article.ID),
			slog.String("error", err.Error()))
	}
	return article, nil
}

// Create validates and persists a new article. The stored status is always
// draft, whatever the caller supplied. When an associated root article id is
// present, the non-owning link is established after the insert.
func (s *ArticleService) Create(ctx context.Context, article *domain.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	if article.Locale == "" {
		article.Locale = s.defaultLocale
	}
	article.Status = domain.StatusDraft

	associatedArticleID := article.AssociatedArticleID
	article.AssociatedArticleID = nil

	if err := s.validator.ValidateArticle(article); err != nil {
		metrics.ObserveArticleOperation("create", err)
		return err
	}

	if err := s.articles.Create(ctx, article); err != nil {
		metrics.ObserveArticleOperation("create", err)
		return fmt.Errorf("create article: %w", err)
	}

	if associatedArticleID != nil {
		if err := s.articles.SetAssociatedArticle(ctx, article.PortalID, article.ID, *associatedArticleID); err != nil {
			metrics.ObserveArticleOperation("create", err)
			return validation.Errors{
				"associated_article_id": validation.NewError("associated_article_not_found", "associated article does not belong to this portal"),
			}
		}
		article.AssociatedArticleID = associatedArticleID
	}

	metrics.ObserveArticleOperation("create", nil)
	return nil
}

// Update applies a partial update: only non-nil patch fields are written,
// everything else keeps its stored value. The merged record is re-validated
// as a whole. An empty patch is a no-op returning the current record.
func (s *ArticleService) Update(ctx context.Context, portalID, id string, patch domain.ArticlePatch) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, portalID, id)
	if err != nil {
		metrics.ObserveArticleOperation("update", err)
		return nil, err
	}

	if patch.IsEmpty() {
		metrics.ObserveArticleOperation("update", nil)
		return article, nil
	}

	applyPatch(article, patch)

	if err := s.validator.ValidateArticle(article); err != nil {
		metrics.ObserveArticleOperation("update", err)
		return nil, err
	}

	if err := s.articles.Update(ctx, article); err != nil {
		metrics.ObserveArticleOperation("update", err)
		return nil, fmt.Errorf("update article: %w", err)
	}

	metrics.ObserveArticleOperation("update", nil)
	return article, nil
}

// Delete permanently removes an article. Children referencing it as root
// keep their rows with the reference nullified.
func (s *ArticleService) Delete(ctx context.Context, portalID, id string) error {
	err := s.articles.Delete(ctx, portalID, id)
	metrics.ObserveArticleOperation("delete", err)
	return err
}

// Reorder validates and applies a bulk position update. Submitting the same
// mapping twice yields the same final positions.
func (s *ArticleService) Reorder(ctx context.Context, portalID string, positions map[string][]string) error {
	if err := s.validator.ValidateReorder(positions); err != nil {
		metrics.ObserveArticleOperation("reorder", err)
		return err
	}

	timer := metrics.NewTimer()
	err := s.articles.UpdatePositions(ctx, portalID, positions)
	timer.ObserveDuration(metrics.ReorderDuration)
	metrics.ObserveArticleOperation("reorder", err)
	if err != nil {
		return err
	}

	metrics.ReorderedCategories.Add(float64(len(positions)))
	return nil
}

func applyPatch(article *domain.Article, patch domain.ArticlePatch) {
	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Slug != nil {
		article.Slug = *patch.Slug
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if patch.Description != nil {
		article.Description = patch.Description
	}
	if patch.Locale != nil {
		article.Locale = *patch.Locale
	}
	if patch.Status != nil {
		article.Status = *patch.Status
	}
	if patch.CategoryID != nil {
		article.CategoryID = patch.CategoryID
	}
	if patch.AuthorID != nil {
		article.AuthorID = *patch.AuthorID
	}
	if patch.AssociatedArticleID != nil {
		article.AssociatedArticleID = patch.AssociatedArticleID
	}
	if patch.Meta != nil {
		article.Meta = *patch.Meta
	}
}

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
