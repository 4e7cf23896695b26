package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hireline/hireline/internal/platform/httpx"
)

// Handler wires the two public auth endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrInvalidRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	in := RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if req.CompanyName != "" {
		in.Company = CompanyProfile{
			Name:        req.CompanyName,
			Description: req.CompanyDescription,
		}
		if req.CompanyWebsite != "" {
			in.Company.Website = &req.CompanyWebsite
		}
	}

	res, err := h.service.Register(r.Context(), in)
	if err != nil {
		if !errors.Is(err, httpx.ErrUserExists) {
			h.logger.Error("register failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	h.logger.Info("user registered", slog.Int64("user_id", res.User.ID), slog.String("role", res.User.Role))
	httpx.JSON(w, http.StatusCreated, newAuthResponse(res))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrInvalidRequest)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Message(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, httpx.ErrInvalidCredentials) && !errors.Is(err, httpx.ErrCompanyNotVerified) {
			h.logger.Error("login failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newAuthResponse(res))
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Sprintf("Invalid value for field '%s'", strings.ToLower(fieldErrs[0].Field()))
	}
	return httpx.ErrInvalidRequest.Error()
}
