package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hireline/hireline/internal/auth"
	"github.com/hireline/hireline/internal/company"
	"github.com/hireline/hireline/internal/job"
	"github.com/hireline/hireline/internal/shared"
	"github.com/hireline/hireline/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	Guard          auth.Middleware
	AuthHandler    *auth.Handler
	JobHandler     *job.Handler
	CompanyHandler *company.Handler
	QueueHandler   *jobs.Handler
}

// NewRouter constructs the chi.Router with Hireline defaults.
func NewRouter(p RouterParams) chi.Router {
	r := chi.NewRouter()
	for _, mw := range MiddlewareStack(MiddlewareConfig{Logger: p.Logger, Config: p.Config}) {
		r.Use(mw)
	}

	r.Get("/api/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/auth", p.AuthHandler.MountRoutes)
	r.Route("/api/jobs", p.JobHandler.MountPublicRoutes)
	r.Route("/api/company", p.JobHandler.MountCompanyRoutes)
	r.Route("/api/admin", func(r chi.Router) {
		p.CompanyHandler.MountAdminRoutes(r)
		if p.QueueHandler != nil {
			r.Group(func(r chi.Router) {
				r.Use(p.Guard.Authenticate)
				r.Use(p.Guard.RequireRole(shared.RoleAdmin))
				p.QueueHandler.MountRoutes(r)
			})
		}
	})

	return r
}
