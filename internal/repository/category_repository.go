package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"helpcenter/internal/domain"
)

const categoryColumns = `id, portal_id, name, slug, locale, description,
	position, created_at, updated_at`

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// Create inserts a new category at the end of the portal's category list.
func (r *PostgresCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories
			(id, portal_id, name, slug, locale, description, position,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM categories WHERE portal_id = $2),
			NOW(), NOW())
		RETURNING position, created_at, updated_at
	`, c.ID, c.PortalID, c.Name, c.Slug, c.Locale, c.Description)

	if err := row.Scan(&c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetBySlug resolves a category by its slug within a portal.
func (r *PostgresCategoryRepository) GetBySlug(ctx context.Context, portalID, slug string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM categories WHERE portal_id = $1 AND slug = $2
	`, categoryColumns), portalID, slug)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// ListByPortal returns a portal's categories in position order.
func (r *PostgresCategoryRepository) ListByPortal(ctx context.Context, portalID string) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM categories WHERE portal_id = $1 ORDER BY position ASC, id ASC
	`, categoryColumns), portalID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

// Delete removes a category. Articles keep their rows; the category
// reference is nullified by the schema.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, portalID, id string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM categories WHERE portal_id = $1 AND id = $2
	`, portalID, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.PortalID, &c.Name, &c.Slug, &c.Locale,
		&c.Description, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
