package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/internal/domain"
	"helpcenter/internal/repository"
)

type fixtures struct {
	accounts   *repository.PostgresAccountRepository
	portals    *repository.PostgresPortalRepository
	categories *repository.PostgresCategoryRepository
	articles   *repository.PostgresArticleRepository
}

func newFixtures(tdb *TestDB) *fixtures {
	return &fixtures{
		accounts:   repository.NewPostgresAccountRepository(tdb.Pool),
		portals:    repository.NewPostgresPortalRepository(tdb.Pool),
		categories: repository.NewPostgresCategoryRepository(tdb.Pool),
		articles:   repository.NewPostgresArticleRepository(tdb.Pool),
	}
}

func (f *fixtures) createPortal(t *testing.T, ctx context.Context) *domain.Portal {
	t.Helper()
	account := &domain.Account{
		ID:     uuid.New().String(),
		Name:   "Test Account",
		Locale: "en",
		Status: domain.AccountStatusActive,
	}
	require.NoError(t, f.accounts.Create(ctx, account))

	portal := &domain.Portal{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		Name:      "Help Center",
		Slug:      "help-" + uuid.New().String()[:8],
	}
	require.NoError(t, f.portals.Create(ctx, portal))
	return portal
}

func (f *fixtures) createCategory(t *testing.T, ctx context.Context, portalID, slug string) *domain.Category {
	t.Helper()
	category := &domain.Category{
		ID:       uuid.New().String(),
		PortalID: portalID,
		Name:     "Category " + slug,
		Slug:     slug,
		Locale:   "en",
	}
	require.NoError(t, f.categories.Create(ctx, category))
	return category
}

func (f *fixtures) createArticle(t *testing.T, ctx context.Context, portalID string, categoryID *string, title string) *domain.Article {
	t.Helper()
	article := &domain.Article{
		ID:         uuid.New().String(),
		PortalID:   portalID,
		CategoryID: categoryID,
		AuthorID:   uuid.New().String(),
		Title:      title,
		Slug:       "slug-" + uuid.New().String()[:13],
		Content:    "Content of " + title,
		Locale:     "en",
		Status:     domain.StatusDraft,
	}
	require.NoError(t, f.articles.Create(ctx, article))
	return article
}

func (f *fixtures) setUpdatedAt(t *testing.T, tdb *TestDB, articleID string, at time.Time) {
	t.Helper()
	_, err := tdb.Pool.Exec(context.Background(),
		"UPDATE articles SET updated_at = $2 WHERE id = $1", articleID, at)
	require.NoError(t, err)
}

func TestPostgresArticleRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	f := newFixtures(testDB)
	ctx := context.Background()

	t.Run("positions are appended within a category", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		category := f.createCategory(t, ctx, portal.ID, "getting-started")

		first := f.createArticle(t, ctx, portal.ID, &category.ID, "First")
		second := f.createArticle(t, ctx, portal.ID, &category.ID, "Second")

		assert.Equal(t, 1, first.Position)
		assert.Equal(t, 2, second.Position)
	})

	t.Run("meta round-trips through jsonb", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)

		article := &domain.Article{
			ID:       uuid.New().String(),
			PortalID: portal.ID,
			AuthorID: uuid.New().String(),
			Title:    "SEO Article",
			Slug:     "seo-article",
			Content:  "Body",
			Locale:   "en",
			Status:   domain.StatusDraft,
			Meta: domain.ArticleMeta{
				Title:       "SEO title",
				Description: "SEO description",
				Tags:        []string{"setup", "faq"},
			},
		}
		require.NoError(t, f.articles.Create(ctx, article))

		got, err := f.articles.GetByID(ctx, portal.ID, article.ID)
		require.NoError(t, err)
		assert.Equal(t, article.Meta, got.Meta)
	})

	t.Run("get is scoped to the portal", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		other := f.createPortal(t, ctx)
		article := f.createArticle(t, ctx, portal.ID, nil, "Scoped")

		_, err := f.articles.GetByID(ctx, other.ID, article.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresArticleRepository_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	f := newFixtures(testDB)
	ctx := context.Background()

	t.Run("count reflects the filter independent of pagination", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)

		for i := 0; i < 7; i++ {
			f.createArticle(t, ctx, portal.ID, nil, fmt.Sprintf("Article %d", i))
		}

		articles, total, err := f.articles.Search(ctx, portal.ID, domain.ArticleFilter{}, 3, 0)
		require.NoError(t, err)
		assert.Len(t, articles, 3)
		assert.Equal(t, 7, total)
	})

	t.Run("page beyond the end returns empty with true total", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		for i := 0; i < 3; i++ {
			f.createArticle(t, ctx, portal.ID, nil, fmt.Sprintf("Article %d", i))
		}

		articles, total, err := f.articles.Search(ctx, portal.ID, domain.ArticleFilter{}, 25, 25*9998)
		require.NoError(t, err)
		assert.Empty(t, articles)
		assert.Equal(t, 3, total)
	})

	t.Run("free-text query matches title, content, and description", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)

		byTitle := f.createArticle(t, ctx, portal.ID, nil, "Billing overview")
		other := f.createArticle(t, ctx, portal.ID, nil, "Unrelated")
		desc := "billing addresses explained"
		withDesc := &domain.Article{
			ID:          uuid.New().String(),
			PortalID:    portal.ID,
			AuthorID:    uuid.New().String(),
			Title:       "Addresses",
			Slug:        "addresses",
			Content:     "Body",
			Description: &desc,
			Locale:      "en",
			Status:      domain.StatusDraft,
		}
		require.NoError(t, f.articles.Create(ctx, withDesc))

		articles, total, err := f.articles.Search(ctx, portal.ID, domain.ArticleFilter{Query: "BILLING"}, 25, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		ids := make([]string, 0, len(articles))
		for _, a := range articles {
			ids = append(ids, a.ID)
		}
		assert.Contains(t, ids, byTitle.ID)
		assert.Contains(t, ids, withDesc.ID)
		assert.NotContains(t, ids, other.ID)
	})

	t.Run("exact filters combine", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)

		match := f.createArticle(t, ctx, portal.ID, nil, "Match")
		f.createArticle(t, ctx, portal.ID, nil, "Other author")

		_, err := testDB.Pool.Exec(ctx,
			"UPDATE articles SET status = 'published' WHERE id = $1", match.ID)
		require.NoError(t, err)

		articles, total, err := f.articles.Search(ctx, portal.ID, domain.ArticleFilter{
			Status:   domain.StatusPublished,
			AuthorID: match.AuthorID,
			Locale:   "en",
		}, 25, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, articles, 1)
		assert.Equal(t, match.ID, articles[0].ID)
	})

	t.Run("category scope orders by position", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		category := f.createCategory(t, ctx, portal.ID, "faq")

		a := f.createArticle(t, ctx, portal.ID, &category.ID, "A")
		b := f.createArticle(t, ctx, portal.ID, &category.ID, "B")
		c := f.createArticle(t, ctx, portal.ID, &category.ID, "C")

		require.NoError(t, f.articles.UpdatePositions(ctx, portal.ID, map[string][]string{
			category.ID: {c.ID, a.ID, b.ID},
		}))

		articles, _, err := f.articles.Search(ctx, portal.ID, domain.ArticleFilter{CategorySlug: "faq"}, 25, 0)
		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, []string{c.ID, a.ID, b.ID},
			[]string{articles[0].ID, articles[1].ID, articles[2].ID})
	})

	t.Run("default order is most recently updated first", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)

		old := f.createArticle(t, ctx, portal.ID, nil, "Old")
		mid := f.createArticle(t, ctx, portal.ID, nil, "Mid")
		fresh := f.createArticle(t, ctx, portal.ID, nil, "Fresh")

		base := time.Now().UTC().Truncate(time.Second)
		f.setUpdatedAt(t, testDB, old.ID, base.Add(-2*time.Hour))
		f.setUpdatedAt(t, testDB, mid.ID, base.Add(-time.Hour))
		f.setUpdatedAt(t, testDB, fresh.ID, base)

		articles, _, err := f.articles.Search(ctx, portal.ID, domain.ArticleFilter{}, 25, 0)
		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.Equal(t, []string{fresh.ID, mid.ID, old.ID},
			[]string{articles[0].ID, articles[1].ID, articles[2].ID})
	})
}

func TestPostgresArticleRepository_UpdatePositions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	f := newFixtures(testDB)
	ctx := context.Background()

	categoryOrder := func(t *testing.T, portalID, slug string) []string {
		t.Helper()
		articles, _, err := f.articles.Search(ctx, portalID, domain.ArticleFilter{CategorySlug: slug}, 25, 0)
		require.NoError(t, err)
		ids := make([]string, 0, len(articles))
		for _, a := range articles {
			ids = append(ids, a.ID)
		}
		return ids
	}

	t.Run("assigns dense positions in payload order", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		category := f.createCategory(t, ctx, portal.ID, "guides")

		a := f.createArticle(t, ctx, portal.ID, &category.ID, "A")
		b := f.createArticle(t, ctx, portal.ID, &category.ID, "B")
		c := f.createArticle(t, ctx, portal.ID, &category.ID, "C")

		require.NoError(t, f.articles.UpdatePositions(ctx, portal.ID, map[string][]string{
			category.ID: {b.ID, c.ID, a.ID},
		}))

		assert.Equal(t, []string{b.ID, c.ID, a.ID}, categoryOrder(t, portal.ID, "guides"))

		var positions []int
		rows, err := testDB.Pool.Query(ctx,
			"SELECT position FROM articles WHERE category_id = $1 ORDER BY position", category.ID)
		require.NoError(t, err)
		defer rows.Close()
		for rows.Next() {
			var p int
			require.NoError(t, rows.Scan(&p))
			positions = append(positions, p)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, []int{1, 2, 3}, positions)
	})

	t.Run("is idempotent", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		category := f.createCategory(t, ctx, portal.ID, "guides")

		a := f.createArticle(t, ctx, portal.ID, &category.ID, "A")
		b := f.createArticle(t, ctx, portal.ID, &category.ID, "B")

		order := map[string][]string{category.ID: {b.ID, a.ID}}
		require.NoError(t, f.articles.UpdatePositions(ctx, portal.ID, order))
		first := categoryOrder(t, portal.ID, "guides")
		require.NoError(t, f.articles.UpdatePositions(ctx, portal.ID, order))
		second := categoryOrder(t, portal.ID, "guides")

		assert.Equal(t, first, second)
		assert.Equal(t, []string{b.ID, a.ID}, second)
	})

	t.Run("renumbers unmentioned members after the payload", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		category := f.createCategory(t, ctx, portal.ID, "guides")

		a := f.createArticle(t, ctx, portal.ID, &category.ID, "A")
		b := f.createArticle(t, ctx, portal.ID, &category.ID, "B")
		c := f.createArticle(t, ctx, portal.ID, &category.ID, "C")
		d := f.createArticle(t, ctx, portal.ID, &category.ID, "D")

		// Only d and a are listed; b and c follow in their prior order
		require.NoError(t, f.articles.UpdatePositions(ctx, portal.ID, map[string][]string{
			category.ID: {d.ID, a.ID},
		}))

		assert.Equal(t, []string{d.ID, a.ID, b.ID, c.ID}, categoryOrder(t, portal.ID, "guides"))
	})

	t.Run("rejects ids outside the portal without partial writes", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		foreign := f.createPortal(t, ctx)
		category := f.createCategory(t, ctx, portal.ID, "guides")
		foreignCategory := f.createCategory(t, ctx, foreign.ID, "guides")

		a := f.createArticle(t, ctx, portal.ID, &category.ID, "A")
		b := f.createArticle(t, ctx, portal.ID, &category.ID, "B")
		intruder := f.createArticle(t, ctx, foreign.ID, &foreignCategory.ID, "Intruder")

		before := categoryOrder(t, portal.ID, "guides")

		err := f.articles.UpdatePositions(ctx, portal.ID, map[string][]string{
			category.ID: {b.ID, intruder.ID, a.ID},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		assert.Equal(t, before, categoryOrder(t, portal.ID, "guides"))
	})
}

func TestPostgresArticleRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	f := newFixtures(testDB)
	ctx := context.Background()

	t.Run("nullifies root references on children", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)

		root := f.createArticle(t, ctx, portal.ID, nil, "Root")
		child := f.createArticle(t, ctx, portal.ID, nil, "Child")
		require.NoError(t, f.articles.SetAssociatedArticle(ctx, portal.ID, child.ID, root.ID))

		require.NoError(t, f.articles.Delete(ctx, portal.ID, root.ID))

		got, err := f.articles.GetByID(ctx, portal.ID, child.ID)
		require.NoError(t, err)
		assert.Nil(t, got.AssociatedArticleID)
	})

	t.Run("missing article returns not found", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)

		err := f.articles.Delete(ctx, portal.ID, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresArticleRepository_SetAssociatedArticle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)
	f := newFixtures(testDB)
	ctx := context.Background()

	t.Run("rejects a root from another portal", func(t *testing.T) {
		testDB.TruncateTables(t, "articles", "categories", "portals", "accounts")
		portal := f.createPortal(t, ctx)
		foreign := f.createPortal(t, ctx)

		child := f.createArticle(t, ctx, portal.ID, nil, "Child")
		foreignRoot := f.createArticle(t, ctx, foreign.ID, nil, "Foreign root")

		err := f.articles.SetAssociatedArticle(ctx, portal.ID, child.ID, foreignRoot.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
