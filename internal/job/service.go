package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hireline/hireline/internal/company"
	"github.com/hireline/hireline/internal/platform/httpx"
)

// RepositoryPort defines data access methods for jobs and applications.
type RepositoryPort interface {
	ListPublic(ctx context.Context) ([]Job, error)
	Get(ctx context.Context, id int64) (*Job, error)
	Create(ctx context.Context, j Job) (int64, error)
	ListByCompany(ctx context.Context, companyID int64) ([]CompanyJob, error)
	Apply(ctx context.Context, jobID, userID int64) error
	Applicants(ctx context.Context, jobID int64) ([]Applicant, error)
	CompanyContact(ctx context.Context, companyID int64) (string, error)
}

// CompanyDirectory resolves the company profile owned by a user.
type CompanyDirectory interface {
	ByOwner(ctx context.Context, ownerID int64) (*company.Company, error)
}

// ApplicationNotice describes a new application for the notification queue.
type ApplicationNotice struct {
	JobID          int64
	JobTitle       string
	CompanyEmail   string
	ApplicantName  string
	ApplicantEmail string
}

// Notifier enqueues application-received notifications. Delivery is
// best-effort; a queue failure never fails the request.
type Notifier interface {
	ApplicationReceived(ctx context.Context, notice ApplicationNotice) error
}

// Service wraps posting and application business rules.
type Service struct {
	repo      RepositoryPort
	companies CompanyDirectory
	cache     *ListingCache
	notifier  Notifier
	logger    *slog.Logger
}

// NewService constructs a new Service. cache and notifier may be nil.
func NewService(repo RepositoryPort, companies CompanyDirectory, cache *ListingCache, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, companies: companies, cache: cache, notifier: notifier, logger: logger}
}

// ListPublic returns the public listing, served through the cache.
func (s *Service) ListPublic(ctx context.Context) ([]Job, error) {
	return s.cache.Fetch(ctx, s.repo.ListPublic)
}

// Get returns one posting.
func (s *Service) Get(ctx context.Context, id int64) (*Job, error) {
	j, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.ErrJobNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// Create adds a posting under the caller's company and invalidates the
// public listing cache.
func (s *Service) Create(ctx context.Context, ownerID int64, title, description, location string, salary int64) (*Job, error) {
	comp, err := s.companies.ByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return nil, httpx.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("resolve company: %w", err)
	}

	j := Job{
		Title:       title,
		Description: description,
		Location:    location,
		Salary:      salary,
		CompanyID:   comp.ID,
		CompanyName: comp.Name,
	}
	id, err := s.repo.Create(ctx, j)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	j.ID = id

	if err := s.cache.Invalidate(ctx); err != nil && s.logger != nil {
		s.logger.Warn("invalidate job listing cache", slog.Any("error", err))
	}

	created, err := s.repo.Get(ctx, id)
	if err != nil {
		return &j, nil
	}
	return created, nil
}

// ListForOwner returns the caller's postings with applicant counts.
func (s *Service) ListForOwner(ctx context.Context, ownerID int64) ([]CompanyJob, error) {
	comp, err := s.companies.ByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return nil, httpx.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("resolve company: %w", err)
	}
	return s.repo.ListByCompany(ctx, comp.ID)
}

// Apply records an application by the given user and enqueues the
// application-received notification.
func (s *Service) Apply(ctx context.Context, jobID, userID int64, userName, userEmail string) error {
	j, err := s.repo.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return httpx.ErrJobNotFound
		}
		return fmt.Errorf("get job: %w", err)
	}

	if err := s.repo.Apply(ctx, jobID, userID); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return httpx.ErrAlreadyApplied
		}
		return fmt.Errorf("apply: %w", err)
	}

	s.notifyApplication(ctx, j, userName, userEmail)
	return nil
}

// Applicants returns the applicant list for one of the caller's postings.
// Postings owned by another company are indistinguishable from missing ones.
func (s *Service) Applicants(ctx context.Context, ownerID, jobID int64) ([]Applicant, error) {
	comp, err := s.companies.ByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return nil, httpx.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("resolve company: %w", err)
	}

	j, err := s.repo.Get(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, httpx.ErrJobNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	if j.CompanyID != comp.ID {
		return nil, httpx.ErrJobNotFound
	}

	return s.repo.Applicants(ctx, jobID)
}

func (s *Service) notifyApplication(ctx context.Context, j *Job, userName, userEmail string) {
	if s.notifier == nil {
		return
	}
	email, err := s.repo.CompanyContact(ctx, j.CompanyID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("resolve company contact", slog.Any("error", err), slog.Int64("company_id", j.CompanyID))
		}
		return
	}
	notice := ApplicationNotice{
		JobID:          j.ID,
		JobTitle:       j.Title,
		CompanyEmail:   email,
		ApplicantName:  userName,
		ApplicantEmail: userEmail,
	}
	if err := s.notifier.ApplicationReceived(ctx, notice); err != nil && s.logger != nil {
		s.logger.Warn("enqueue application notice", slog.Any("error", err), slog.Int64("job_id", j.ID))
	}
}
