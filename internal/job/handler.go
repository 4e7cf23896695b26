package job

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hireline/hireline/internal/auth"
	"github.com/hireline/hireline/internal/platform/httpx"
	"github.com/hireline/hireline/internal/shared"
)

// Handler wires the public job-seeker endpoints and the company-facing
// posting endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	guard     auth.Middleware
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard auth.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		guard:     guard,
		validator: validator.New(),
	}
}

// MountPublicRoutes registers the /api/jobs routes.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Get("/", h.listJobs)
	r.Get("/{id}", h.getJob)
	r.Group(func(r chi.Router) {
		r.Use(h.guard.Authenticate)
		r.Use(h.guard.RequireRole(shared.RoleUser))
		r.Post("/{id}/apply", h.applyForJob)
	})
}

// MountCompanyRoutes registers the /api/company routes.
func (h *Handler) MountCompanyRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.Authenticate)
		r.Use(h.guard.RequireRole(shared.RoleCompany))
		r.Post("/jobs", h.createJob)
		r.Get("/jobs", h.listCompanyJobs)
		r.Get("/jobs/{id}/applicants", h.listApplicants)
	})
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListPublic(r.Context())
	if err != nil {
		h.logger.Error("list jobs failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if jobs == nil {
		jobs = []Job{}
	}
	httpx.JSON(w, http.StatusOK, jobs)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.jobID(w, r)
	if !ok {
		return
	}
	j, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "get job")
		return
	}
	httpx.JSON(w, http.StatusOK, j)
}

func (h *Handler) applyForJob(w http.ResponseWriter, r *http.Request) {
	id, ok := h.jobID(w, r)
	if !ok {
		return
	}
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrNotAuthorized)
		return
	}
	if err := h.service.Apply(r.Context(), id, identity.ID, identity.Name, identity.Email); err != nil {
		h.respondServiceError(w, err, "apply for job")
		return
	}
	httpx.Message(w, http.StatusOK, "Applied successfully")
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrInvalidRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrNotAuthorized)
		return
	}

	j, err := h.service.Create(r.Context(), identity.ID, req.Title, req.Description, req.Location, req.Salary)
	if err != nil {
		h.respondServiceError(w, err, "create job")
		return
	}

	h.logger.Info("job created", slog.Int64("job_id", j.ID), slog.Int64("company_id", j.CompanyID))
	httpx.JSON(w, http.StatusCreated, j)
}

func (h *Handler) listCompanyJobs(w http.ResponseWriter, r *http.Request) {
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrNotAuthorized)
		return
	}
	jobs, err := h.service.ListForOwner(r.Context(), identity.ID)
	if err != nil {
		h.respondServiceError(w, err, "list company jobs")
		return
	}
	if jobs == nil {
		jobs = []CompanyJob{}
	}
	httpx.JSON(w, http.StatusOK, jobs)
}

func (h *Handler) listApplicants(w http.ResponseWriter, r *http.Request) {
	id, ok := h.jobID(w, r)
	if !ok {
		return
	}
	identity := shared.IdentityFromContext(r.Context())
	if identity == nil {
		httpx.RespondError(w, httpx.ErrNotAuthorized)
		return
	}
	applicants, err := h.service.Applicants(r.Context(), identity.ID, id)
	if err != nil {
		h.respondServiceError(w, err, "list applicants")
		return
	}
	if applicants == nil {
		applicants = []Applicant{}
	}
	httpx.JSON(w, http.StatusOK, applicants)
}

func (h *Handler) jobID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrJobNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, httpx.ErrJobNotFound),
		errors.Is(err, httpx.ErrCompanyNotFound),
		errors.Is(err, httpx.ErrAlreadyApplied),
		errors.Is(err, httpx.ErrNotAuthorized):
	default:
		h.logger.Error(op+" failed", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Sprintf("Invalid value for field '%s'", strings.ToLower(fieldErrs[0].Field()))
	}
	return httpx.ErrInvalidRequest.Error()
}
