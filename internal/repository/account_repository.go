package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"helpcenter/internal/domain"
)

const accountColumns = `id, name, locale, status, created_at, updated_at`

// PostgresAccountRepository implements AccountRepository using PostgreSQL.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository.
func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// Create inserts a new account.
func (r *PostgresAccountRepository) Create(ctx context.Context, a *domain.Account) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (id, name, locale, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`, a.ID, a.Name, a.Locale, a.Status)

	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by id.
func (r *PostgresAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM accounts WHERE id = $1
	`, accountColumns), id)

	var a domain.Account
	if err := row.Scan(&a.ID, &a.Name, &a.Locale, &a.Status,
		&a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// Update writes the dashboard-editable fields of an account.
func (r *PostgresAccountRepository) Update(ctx context.Context, a *domain.Account) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		   SET name = $2, locale = $3, status = $4, updated_at = NOW()
		 WHERE id = $1
	`, a.ID, a.Name, a.Locale, a.Status)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search returns one page of accounts matching the query over the
// dashboard's searchable fields (id and name), plus the total match count.
func (r *PostgresAccountRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Account, int, error) {
	where := ""
	args := []interface{}{}
	if query != "" {
		where = "WHERE (name ILIKE $1 OR id::text ILIKE $1)"
		args = append(args, "%"+query+"%")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM accounts %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s FROM accounts %s ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d
	`, accountColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, limit)
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Locale, &a.Status,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read accounts: %w", err)
	}

	return accounts, total, nil
}
