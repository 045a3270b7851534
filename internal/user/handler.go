// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListUsers)
		r.Get("/me", h.GetMe)
		r.Put("/me", h.UpdateMe)
		r.Get("/{userID}", h.GetUser)
	})
}

// RegisterAdminRoutes registers admin-only user management endpoints.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/users", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/", h.CreateUser)
		r.Put("/{userID}", h.UpdateUser)
		r.Delete("/{userID}", h.DeleteUser)
	})
}

// ListUsers returns all users, optionally filtered by role.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")

	var (
		users []User
		err   error
	)
	if role != "" {
		users, err = h.service.ByRole(r.Context(), role)
	} else {
		users, err = h.service.ListUsers(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "users", err)
		return
	}

	core.OK(w, ToUserResponseList(users))
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	u, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		core.WriteDomainError(w, "user", err)
		return
	}

	core.OK(w, ToUserResponse(u))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	h.update(w, r, userID)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	u, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		core.WriteDomainError(w, "user", err)
		return
	}

	core.OK(w, ToUserResponse(u))
}

// CreateUser registers a user with any role (admin only).
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.service.AdminCreate(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "user", err)
		return
	}

	core.Created(w, ToUserResponse(u))
}

// UpdateUser updates a specific user's profile (admin only).
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, chi.URLParam(r, "userID"))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, userID string) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.service.UpdateUser(r.Context(), userID, req)
	if err != nil {
		core.WriteDomainError(w, "user", err)
		return
	}

	core.OK(w, ToUserResponse(u))
}

// DeleteUser removes a user unless projects or tasks still reference it
// (admin only).
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	targetID := chi.URLParam(r, "userID")

	if err := h.service.CanDeleteUser(r.Context(), requesterID, targetID); err != nil {
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "insufficient permissions")
			return
		}
		core.WriteDomainError(w, "user", err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), targetID); err != nil {
		core.WriteDomainError(w, "user", err)
		return
	}

	core.NoContent(w)
}
