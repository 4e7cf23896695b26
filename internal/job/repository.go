package job

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates the looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates a unique constraint rejected the insert.
	ErrDuplicate = errors.New("duplicate record")
)

// Repository provides PostgreSQL backed persistence for jobs and
// applications.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListPublic returns every posting with its company name, newest first.
func (r *Repository) ListPublic(ctx context.Context) ([]Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT j.id, j.title, j.description, j.location, j.salary, j.company_id,
		       c.name, j.created_at, j.updated_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		ORDER BY j.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.CompanyID,
			&j.CompanyName, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Get returns a single posting with its company name.
func (r *Repository) Get(ctx context.Context, id int64) (*Job, error) {
	var j Job
	err := r.pool.QueryRow(ctx, `
		SELECT j.id, j.title, j.description, j.location, j.salary, j.company_id,
		       c.name, j.created_at, j.updated_at
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`, id).Scan(
		&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.CompanyID,
		&j.CompanyName, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Create inserts a posting and returns its id.
func (r *Repository) Create(ctx context.Context, j Job) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, location, salary, company_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		j.Title, j.Description, j.Location, j.Salary, j.CompanyID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListByCompany returns the company's postings with applicant counts.
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]CompanyJob, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT j.id, j.title, j.description, j.location, j.salary, j.company_id,
		       j.created_at, j.updated_at,
		       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
		FROM jobs j
		WHERE j.company_id = $1
		ORDER BY j.created_at DESC`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []CompanyJob
	for rows.Next() {
		var j CompanyJob
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Location, &j.Salary, &j.CompanyID,
			&j.CreatedAt, &j.UpdatedAt, &j.ApplicantCount,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Apply records an application. ErrDuplicate when the user already applied
// to the same posting.
func (r *Repository) Apply(ctx context.Context, jobID, userID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO applications (job_id, user_id) VALUES ($1, $2)`, jobID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Applicants returns who applied to a posting, oldest application first.
func (r *Repository) Applicants(ctx context.Context, jobID int64) ([]Applicant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, u.email, a.created_at
		FROM applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []Applicant
	for rows.Next() {
		var a Applicant
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.AppliedAt); err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

// CompanyContact returns the owning account's email for a company, used to
// address application notifications.
func (r *Repository) CompanyContact(ctx context.Context, companyID int64) (string, error) {
	var email string
	err := r.pool.QueryRow(ctx, `
		SELECT u.email FROM companies c JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`, companyID).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return email, nil
}
