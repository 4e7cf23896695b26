package company

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the looked-up company does not exist.
var ErrNotFound = errors.New("record not found")

// Repository provides PostgreSQL backed persistence for companies.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns every company joined with its owning account, newest first.
func (r *Repository) List(ctx context.Context) ([]WithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.description, c.website, c.user_id, c.is_verified,
		       c.created_at, c.updated_at, u.name, u.email
		FROM companies c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []WithOwner
	for rows.Next() {
		var c WithOwner
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.Website, &c.UserID, &c.IsVerified,
			&c.CreatedAt, &c.UpdatedAt, &c.Owner.Name, &c.Owner.Email,
		); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// ByOwner returns the company owned by the given user.
func (r *Repository) ByOwner(ctx context.Context, ownerID int64) (*Company, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, website, user_id, is_verified, created_at, updated_at
		FROM companies WHERE user_id = $1`, ownerID)
	return scanCompany(row)
}

// Verify marks a company as admin-verified and returns the updated record.
// Verifying an already verified company is a no-op on the stored state.
func (r *Repository) Verify(ctx context.Context, id int64) (*Company, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE companies SET is_verified = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, website, user_id, is_verified, created_at, updated_at`, id)
	return scanCompany(row)
}

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.UserID, &c.IsVerified, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
