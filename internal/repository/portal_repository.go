package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"helpcenter/internal/domain"
)

const portalColumns = `id, account_id, name, slug, custom_domain, color,
	homepage_link, page_title, header_text, created_at, updated_at`

// PostgresPortalRepository implements PortalRepository using PostgreSQL.
type PostgresPortalRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPortalRepository creates a new PostgresPortalRepository.
func NewPostgresPortalRepository(pool *pgxpool.Pool) *PostgresPortalRepository {
	return &PostgresPortalRepository{pool: pool}
}

// Create inserts a new portal.
func (r *PostgresPortalRepository) Create(ctx context.Context, p *domain.Portal) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO portals
			(id, account_id, name, slug, custom_domain, color, homepage_link,
			 page_title, header_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.AccountID, p.Name, p.Slug, p.CustomDomain, p.Color,
		p.HomepageLink, p.PageTitle, p.HeaderText)

	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("insert portal: %w", err)
	}
	return nil
}

// GetBySlug resolves a portal by its slug within an account.
func (r *PostgresPortalRepository) GetBySlug(ctx context.Context, accountID, slug string) (*domain.Portal, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM portals WHERE account_id = $1 AND slug = $2
	`, portalColumns), accountID, slug)

	var p domain.Portal
	if err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Slug, &p.CustomDomain,
		&p.Color, &p.HomepageLink, &p.PageTitle, &p.HeaderText,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get portal: %w", err)
	}
	return &p, nil
}

// ListByAccount returns all portals owned by an account.
func (r *PostgresPortalRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Portal, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM portals WHERE account_id = $1 ORDER BY name ASC
	`, portalColumns), accountID)
	if err != nil {
		return nil, fmt.Errorf("query portals: %w", err)
	}
	defer rows.Close()

	var portals []domain.Portal
	for rows.Next() {
		var p domain.Portal
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Slug,
			&p.CustomDomain, &p.Color, &p.HomepageLink, &p.PageTitle,
			&p.HeaderText, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan portal: %w", err)
		}
		portals = append(portals, p)
	}
	return portals, rows.Err()
}
