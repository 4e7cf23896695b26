package job_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireline/hireline/internal/auth"
	"github.com/hireline/hireline/internal/job"
)

type accountStub struct {
	users map[int64]*auth.User
}

func (s *accountStub) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (s *accountStub) FindByID(_ context.Context, id int64) (*auth.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return u, nil
}

func (s *accountStub) CreateUser(_ context.Context, _ auth.User) (int64, error) {
	return 0, auth.ErrDuplicate
}

func (s *accountStub) CreateCompanyUser(_ context.Context, _ auth.User, _ auth.CompanyProfile) (int64, error) {
	return 0, auth.ErrDuplicate
}

func (s *accountStub) CompanyVerified(_ context.Context, _ int64) (bool, error) {
	return true, nil
}

type jobRouterFixture struct {
	router       chi.Router
	repo         *stubRepo
	notifier     *recordingNotifier
	seekerToken  string
	companyToken string
}

// newJobRouter mounts the public and company job routes behind a real auth
// guard. Owner 10 maps to company 1, seeker is user 2.
func newJobRouter(t *testing.T) *jobRouterFixture {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	accounts := &accountStub{users: map[int64]*auth.User{
		2:  {ID: 2, Name: "Sam Seeker", Email: "sam@x.com", Role: "user"},
		10: {ID: 10, Name: "Acme HR", Email: "hr@acme.com", Role: "company"},
	}}
	guard := auth.Middleware{Service: auth.NewService(accounts, issuer)}

	repo, _, notifier, svc := newFixture()
	handler := job.NewHandler(slog.Default(), svc, guard)
	r := chi.NewRouter()
	r.Route("/api/jobs", handler.MountPublicRoutes)
	r.Route("/api/company", handler.MountCompanyRoutes)

	seekerToken, err := issuer.Issue(2)
	require.NoError(t, err)
	companyToken, err := issuer.Issue(10)
	require.NoError(t, err)

	return &jobRouterFixture{
		router:       r,
		repo:         repo,
		notifier:     notifier,
		seekerToken:  seekerToken,
		companyToken: companyToken,
	}
}

func (f *jobRouterFixture) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestPublicListingEndpoint(t *testing.T) {
	f := newJobRouter(t)

	rec := f.do(t, http.MethodGet, "/api/jobs", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = f.do(t, http.MethodPost, "/api/company/jobs", f.companyToken,
		`{"title":"Backend Engineer","description":"APIs","location":"Remote","salary":120000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/jobs", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Backend Engineer")
}

func TestCreateJobRequiresCompanyRole(t *testing.T) {
	f := newJobRouter(t)
	body := `{"title":"Backend Engineer","description":"APIs","location":"Remote","salary":120000}`

	rec := f.do(t, http.MethodPost, "/api/company/jobs", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/company/jobs", f.seekerToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateJobValidation(t *testing.T) {
	f := newJobRouter(t)

	rec := f.do(t, http.MethodPost, "/api/company/jobs", f.companyToken,
		`{"description":"no title","location":"Remote","salary":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title")
}

func TestApplyEndpoint(t *testing.T) {
	f := newJobRouter(t)
	f.repo.contacts[1] = "hr@acme.com"

	rec := f.do(t, http.MethodPost, "/api/company/jobs", f.companyToken,
		`{"title":"Backend Engineer","description":"APIs","location":"Remote","salary":120000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("company role cannot apply", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/jobs/1/apply", f.companyToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("seeker applies once", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/jobs/1/apply", f.seekerToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Applied successfully")
		require.Len(t, f.notifier.notices, 1)
		assert.Equal(t, "hr@acme.com", f.notifier.notices[0].CompanyEmail)
	})

	t.Run("second application rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/jobs/1/apply", f.seekerToken, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "You have already applied for this job")
	})

	t.Run("unknown job", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/jobs/99/apply", f.seekerToken, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Job not found")
	})
}

func TestApplicantsEndpoint(t *testing.T) {
	f := newJobRouter(t)

	rec := f.do(t, http.MethodPost, "/api/company/jobs", f.companyToken,
		`{"title":"Backend Engineer","description":"APIs","location":"Remote","salary":120000}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/jobs/1/apply", f.seekerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/company/jobs/1/applicants", f.companyToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/company/jobs", f.companyToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"applicantCount":1`)
}
