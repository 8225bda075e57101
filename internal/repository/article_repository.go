package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"helpcenter/internal/domain"
)

const articleColumns = `id, portal_id, category_id, author_id, associated_article_id,
	title, slug, content, description, locale, status, position, meta, views,
	created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article. The position is assigned at the end of the
// article's category sequence (1 for the first member).
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	metaJSON, err := json.Marshal(a.Meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO articles
			(id, portal_id, category_id, author_id, title, slug, content,
			 description, locale, status, position, meta, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			 (SELECT COALESCE(MAX(position), 0) + 1
			    FROM articles
			   WHERE portal_id = $2 AND category_id IS NOT DISTINCT FROM $3),
			 $11, NOW(), NOW())
		RETURNING position, views, created_at, updated_at
	`, a.ID, a.PortalID, a.CategoryID, a.AuthorID, a.Title, a.Slug, a.Content,
		a.Description, a.Locale, a.Status, metaJSON)

	if err := row.Scan(&a.Position, &a.Views, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID fetches a single article scoped to a portal.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, portalID, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM articles WHERE portal_id = $1 AND id = $2
	`, articleColumns), portalID, id)

	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// Update writes all mutable fields of an article. Position is owned by
// UpdatePositions and is never written here.
func (r *PostgresArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	metaJSON, err := json.Marshal(a.Meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		   SET category_id = $3, author_id = $4, associated_article_id = $5,
		       title = $6, slug = $7, content = $8, description = $9,
		       locale = $10, status = $11, meta = $12, updated_at = NOW()
		 WHERE portal_id = $1 AND id = $2
	`, a.PortalID, a.ID, a.CategoryID, a.AuthorID, a.AssociatedArticleID,
		a.Title, a.Slug, a.Content, a.Description, a.Locale, a.Status, metaJSON)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete hard-deletes an article. Articles pointing at it as their root get
// the reference nullified in the same transaction, so readers never resolve
// a dangling id.
func (r *PostgresArticleRepository) Delete(ctx context.Context, portalID, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		UPDATE articles SET associated_article_id = NULL
		 WHERE portal_id = $1 AND associated_article_id = $2
	`, portalID, id); err != nil {
		return fmt.Errorf("clear root references: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM articles WHERE portal_id = $1 AND id = $2
	`, portalID, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Search returns one page of a portal's articles matching the filter, plus
// the total match count computed before slicing. Results are ordered by
// position when the filter is scoped to a category, most-recently-updated
// otherwise.
func (r *PostgresArticleRepository) Search(ctx context.Context, portalID string, filter domain.ArticleFilter, limit, offset int) ([]domain.Article, int, error) {
	where, args := buildArticleWhere(portalID, filter)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM articles a %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	orderBy := "a.updated_at DESC, a.id ASC"
	if filter.CategorySlug != "" {
		orderBy = "a.position ASC, a.id ASC"
	}

	listQuery := fmt.Sprintf(`
		SELECT %s FROM articles a %s ORDER BY %s LIMIT $%d OFFSET $%d
	`, prefixColumns("a"), where, orderBy, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read articles: %w", err)
	}

	return articles, total, nil
}

// buildArticleWhere assembles the WHERE clause for Search. Empty filter
// fields impose no constraint.
func buildArticleWhere(portalID string, filter domain.ArticleFilter) (string, []interface{}) {
	clauses := []string{"a.portal_id = $1"}
	args := []interface{}{portalID}

	if filter.Query != "" {
		n := len(args) + 1
		clauses = append(clauses, fmt.Sprintf(
			"(a.title ILIKE $%d OR a.content ILIKE $%d OR a.description ILIKE $%d)", n, n, n))
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.CategorySlug != "" {
		n := len(args) + 1
		clauses = append(clauses, fmt.Sprintf(
			"a.category_id IN (SELECT id FROM categories WHERE portal_id = a.portal_id AND slug = $%d)", n))
		args = append(args, filter.CategorySlug)
	}
	if filter.Status != "" {
		n := len(args) + 1
		clauses = append(clauses, fmt.Sprintf("a.status = $%d", n))
		args = append(args, filter.Status)
	}
	if filter.AuthorID != "" {
		n := len(args) + 1
		clauses = append(clauses, fmt.Sprintf("a.author_id = $%d", n))
		args = append(args, filter.AuthorID)
	}
	if filter.Locale != "" {
		n := len(args) + 1
		clauses = append(clauses, fmt.Sprintf("a.locale = $%d", n))
		args = append(args, filter.Locale)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// UpdatePositions applies a bulk reorder. For each category in the mapping,
// listed articles take positions 1..N in payload order and remaining members
// of the category are renumbered after N preserving their previous relative
// order, so the sequence stays dense and collision-free. The whole request
// runs in one transaction: an id outside the portal or the named category
// aborts everything.
func (r *PostgresArticleRepository) UpdatePositions(ctx context.Context, portalID string, positions map[string][]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Deterministic application order across categories
	categoryIDs := make([]string, 0, len(positions))
	for categoryID := range positions {
		categoryIDs = append(categoryIDs, categoryID)
	}
	sort.Strings(categoryIDs)

	for _, categoryID := range categoryIDs {
		articleIDs := positions[categoryID]

		var owned int
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM articles
			 WHERE portal_id = $1 AND category_id = $2 AND id = ANY($3::uuid[])
		`, portalID, categoryID, articleIDs).Scan(&owned)
		if err != nil {
			return fmt.Errorf("verify category %s: %w", categoryID, err)
		}
		if owned != len(articleIDs) {
			return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
		}

		if _, err := tx.Exec(ctx, `
			UPDATE articles a
			   SET position = v.pos
			  FROM (SELECT id::uuid, ordinality AS pos
			          FROM unnest($3::uuid[]) WITH ORDINALITY AS t(id, ordinality)) v
			 WHERE a.id = v.id AND a.portal_id = $1 AND a.category_id = $2
		`, portalID, categoryID, articleIDs); err != nil {
			return fmt.Errorf("apply positions for category %s: %w", categoryID, err)
		}

		if _, err := tx.Exec(ctx, `
			WITH ranked AS (
				SELECT id,
				       $4::int + ROW_NUMBER() OVER (ORDER BY position ASC, id ASC) AS new_position
				  FROM articles
				 WHERE portal_id = $1 AND category_id = $2 AND NOT (id = ANY($3::uuid[]))
			)
			UPDATE articles a
			   SET position = r.new_position
			  FROM ranked r
			 WHERE a.id = r.id
		`, portalID, categoryID, articleIDs, len(articleIDs)); err != nil {
			return fmt.Errorf("renumber remainder for category %s: %w", categoryID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SetAssociatedArticle points an article at its root article. Both articles
// must belong to the portal.
func (r *PostgresArticleRepository) SetAssociatedArticle(ctx context.Context, portalID, id, rootID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET associated_article_id = $3, updated_at = NOW()
		 WHERE portal_id = $1 AND id = $2
		   AND EXISTS (SELECT 1 FROM articles WHERE portal_id = $1 AND id = $3)
	`, portalID, id, rootID)
	if err != nil {
		return fmt.Errorf("set associated article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the article view counter without touching updated_at.
func (r *PostgresArticleRepository) IncrementViews(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE articles SET views = views + 1 WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// prefixColumns qualifies articleColumns with a table alias.
func prefixColumns(alias string) string {
	cols := strings.Split(articleColumns, ",")
	for i, col := range cols {
		cols[i] = alias + "." + strings.TrimSpace(col)
	}
	return strings.Join(cols, ", ")
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	var metaJSON []byte
	if err := row.Scan(&a.ID, &a.PortalID, &a.CategoryID, &a.AuthorID,
		&a.AssociatedArticleID, &a.Title, &a.Slug, &a.Content, &a.Description,
		&a.Locale, &a.Status, &a.Position, &metaJSON, &a.Views,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &a.Meta); err != nil {
			return nil, fmt.Errorf("unmarshal meta: %w", err)
		}
	}
	return &a, nil
}
