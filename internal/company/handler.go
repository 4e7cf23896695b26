package company

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hireline/hireline/internal/auth"
	"github.com/hireline/hireline/internal/platform/httpx"
	"github.com/hireline/hireline/internal/shared"
)

// Handler wires the admin-facing company endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	guard   auth.Middleware
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, guard: guard}
}

// MountAdminRoutes registers company administration routes.
func (h *Handler) MountAdminRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.Authenticate)
		r.Use(h.guard.RequireRole(shared.RoleAdmin))
		r.Get("/companies", h.listCompanies)
		r.Put("/companies/{id}/verify", h.verifyCompany)
	})
}

func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list companies failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if companies == nil {
		companies = []WithOwner{}
	}
	httpx.JSON(w, http.StatusOK, companies)
}

func (h *Handler) verifyCompany(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrCompanyNotFound)
		return
	}

	c, err := h.service.Verify(r.Context(), id)
	if err != nil {
		if !errors.Is(err, httpx.ErrCompanyNotFound) {
			h.logger.Error("verify company failed", slog.Any("error", err), slog.Int64("id", id))
		}
		httpx.RespondError(w, err)
		return
	}

	h.logger.Info("company verified", slog.Int64("company_id", c.ID))
	httpx.JSON(w, http.StatusOK, c)
}
