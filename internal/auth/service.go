package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hireline/hireline/internal/platform/httpx"
	"github.com/hireline/hireline/internal/shared"
)

// RepositoryPort defines data access methods for accounts.
type RepositoryPort interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, user User) (int64, error)
	CreateCompanyUser(ctx context.Context, user User, profile CompanyProfile) (int64, error)
	CompanyVerified(ctx context.Context, ownerID int64) (bool, error)
}

// RegisterInput carries validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Company  CompanyProfile
}

// Service wraps registration, login and token verification rules.
type Service struct {
	repo   RepositoryPort
	tokens *TokenIssuer
}

// NewService constructs a new Service.
func NewService(repo RepositoryPort, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates an account with a hashed password and issues its first
// token. Company-role accounts get their company profile in the same
// transaction, so a half-registered company cannot exist.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Result, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}

	var id int64
	if in.Role == shared.RoleCompany {
		id, err = s.repo.CreateCompanyUser(ctx, user, in.Company)
	} else {
		id, err = s.repo.CreateUser(ctx, user)
	}
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, httpx.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	token, err := s.tokens.Issue(id)
	if err != nil {
		return nil, err
	}
	return &Result{User: &user, Token: token}, nil
}

// Login validates email/password credentials and issues a token. Unknown
// email and wrong password return the identical generic error; the
// unverified-company rejection is deliberately specific.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httpx.ErrInvalidCredentials
	}

	if user.Role == shared.RoleCompany {
		verified, err := s.repo.CompanyVerified(ctx, user.ID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("check company verification: %w", err)
		}
		if !verified {
			return nil, httpx.ErrCompanyNotVerified
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &Result{User: user, Token: token}, nil
}

// Authenticate resolves a presented bearer token to the account it asserts.
// Every token failure collapses to the generic unauthorized error.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, httpx.ErrNotAuthorized
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.ErrNotAuthorized
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}
