package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/hireline/hireline/internal/platform/httpx"
)

// RepositoryPort defines data access methods for companies.
type RepositoryPort interface {
	List(ctx context.Context) ([]WithOwner, error)
	ByOwner(ctx context.Context, ownerID int64) (*Company, error)
	Verify(ctx context.Context, id int64) (*Company, error)
}

// Service wraps company administration rules.
type Service struct {
	repo RepositoryPort
}

// NewService constructs a new Service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all companies with their owning accounts.
func (s *Service) List(ctx context.Context) ([]WithOwner, error) {
	return s.repo.List(ctx)
}

// Verify flips the company's verified flag. Idempotent: a second call
// changes nothing and still succeeds.
func (s *Service) Verify(ctx context.Context, id int64) (*Company, error) {
	c, err := s.repo.Verify(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("verify company: %w", err)
	}
	return c, nil
}
