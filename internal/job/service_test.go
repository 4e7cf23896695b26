package job_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/company"
	"github.com/hireline/hireline/internal/job"
	"github.com/hireline/hireline/internal/platform/httpx"
	_ "github.com/hireline/hireline/testing"
)

type stubRepo struct {
	jobs         map[int64]*job.Job
	nextID       int64
	applications map[int64][]int64 // job id -> applicant user ids
	contacts     map[int64]string  // company id -> owner email
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		jobs:         make(map[int64]*job.Job),
		applications: make(map[int64][]int64),
		contacts:     make(map[int64]string),
		nextID:       1,
	}
}

func (s *stubRepo) ListPublic(_ context.Context) ([]job.Job, error) {
	var out []job.Job
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*job.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, job.ErrNotFound
	}
	copied := *j
	return &copied, nil
}

func (s *stubRepo) Create(_ context.Context, j job.Job) (int64, error) {
	j.ID = s.nextID
	s.nextID++
	s.jobs[j.ID] = &j
	return j.ID, nil
}

func (s *stubRepo) ListByCompany(_ context.Context, companyID int64) ([]job.CompanyJob, error) {
	var out []job.CompanyJob
	for _, j := range s.jobs {
		if j.CompanyID == companyID {
			out = append(out, job.CompanyJob{Job: *j, ApplicantCount: len(s.applications[j.ID])})
		}
	}
	return out, nil
}

func (s *stubRepo) Apply(_ context.Context, jobID, userID int64) error {
	for _, applicant := range s.applications[jobID] {
		if applicant == userID {
			return job.ErrDuplicate
		}
	}
	s.applications[jobID] = append(s.applications[jobID], userID)
	return nil
}

func (s *stubRepo) Applicants(_ context.Context, jobID int64) ([]job.Applicant, error) {
	var out []job.Applicant
	for _, userID := range s.applications[jobID] {
		out = append(out, job.Applicant{ID: userID})
	}
	return out, nil
}

func (s *stubRepo) CompanyContact(_ context.Context, companyID int64) (string, error) {
	email, ok := s.contacts[companyID]
	if !ok {
		return "", job.ErrNotFound
	}
	return email, nil
}

type stubDirectory struct {
	byOwner map[int64]*company.Company
}

func (s *stubDirectory) ByOwner(_ context.Context, ownerID int64) (*company.Company, error) {
	c, ok := s.byOwner[ownerID]
	if !ok {
		return nil, company.ErrNotFound
	}
	return c, nil
}

type recordingNotifier struct {
	notices []job.ApplicationNotice
}

func (n *recordingNotifier) ApplicationReceived(_ context.Context, notice job.ApplicationNotice) error {
	n.notices = append(n.notices, notice)
	return nil
}

func newFixture() (*stubRepo, *stubDirectory, *recordingNotifier, *job.Service) {
	repo := newStubRepo()
	dir := &stubDirectory{byOwner: map[int64]*company.Company{
		10: {ID: 1, Name: "Acme", UserID: 10, IsVerified: true},
	}}
	notifier := &recordingNotifier{}
	svc := job.NewService(repo, dir, nil, notifier, slog.Default())
	return repo, dir, notifier, svc
}

func TestCreateJobResolvesCompany(t *testing.T) {
	repo, _, _, svc := newFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, 10, "Backend Engineer", "APIs all day", "Remote", 120000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.CompanyID)
	assert.Len(t, repo.jobs, 1)

	_, err = svc.Create(ctx, 99, "Nope", "No company profile", "Remote", 0)
	assert.ErrorIs(t, err, httpx.ErrCompanyNotFound)
}

func TestGetUnknownJob(t *testing.T) {
	_, _, _, svc := newFixture()

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, httpx.ErrJobNotFound)
}

func TestApplyNotifiesCompany(t *testing.T) {
	repo, _, notifier, svc := newFixture()
	ctx := context.Background()
	repo.contacts[1] = "hr@acme.com"

	created, err := svc.Create(ctx, 10, "Backend Engineer", "APIs", "Remote", 120000)
	require.NoError(t, err)

	err = svc.Apply(ctx, created.ID, 33, "Sam Seeker", "sam@x.com")
	require.NoError(t, err)
	require.Len(t, notifier.notices, 1)
	assert.Equal(t, "hr@acme.com", notifier.notices[0].CompanyEmail)
	assert.Equal(t, "sam@x.com", notifier.notices[0].ApplicantEmail)
	assert.Equal(t, created.Title, notifier.notices[0].JobTitle)
}

func TestApplyTwiceRejected(t *testing.T) {
	_, _, _, svc := newFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, 10, "Backend Engineer", "APIs", "Remote", 120000)
	require.NoError(t, err)

	require.NoError(t, svc.Apply(ctx, created.ID, 33, "Sam", "sam@x.com"))
	err = svc.Apply(ctx, created.ID, 33, "Sam", "sam@x.com")
	assert.ErrorIs(t, err, httpx.ErrAlreadyApplied)
}

func TestApplyUnknownJob(t *testing.T) {
	_, _, notifier, svc := newFixture()

	err := svc.Apply(context.Background(), 42, 33, "Sam", "sam@x.com")
	assert.ErrorIs(t, err, httpx.ErrJobNotFound)
	assert.Empty(t, notifier.notices)
}

func TestApplicantsRequiresOwnership(t *testing.T) {
	repo, dir, _, svc := newFixture()
	ctx := context.Background()
	dir.byOwner[20] = &company.Company{ID: 2, Name: "Initech", UserID: 20, IsVerified: true}

	created, err := svc.Create(ctx, 10, "Backend Engineer", "APIs", "Remote", 120000)
	require.NoError(t, err)
	require.NoError(t, svc.Apply(ctx, created.ID, 33, "Sam", "sam@x.com"))

	applicants, err := svc.Applicants(ctx, 10, created.ID)
	require.NoError(t, err)
	assert.Len(t, applicants, 1)

	// Another company sees someone else's posting as missing.
	_, err = svc.Applicants(ctx, 20, created.ID)
	assert.ErrorIs(t, err, httpx.ErrJobNotFound)

	assert.Len(t, repo.applications[created.ID], 1)
}

func TestListForOwnerCountsApplicants(t *testing.T) {
	_, _, _, svc := newFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, 10, "Backend Engineer", "APIs", "Remote", 120000)
	require.NoError(t, err)
	require.NoError(t, svc.Apply(ctx, created.ID, 33, "Sam", "sam@x.com"))
	require.NoError(t, svc.Apply(ctx, created.ID, 34, "Ana", "ana@x.com"))

	jobs, err := svc.ListForOwner(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 2, jobs[0].ApplicantCount)
}

func TestListPublicWithoutCache(t *testing.T) {
	_, _, _, svc := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, 10, "Backend Engineer", "APIs", "Remote", 120000)
	require.NoError(t, err)

	jobs, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}
