// AngelaMos | 2026
// handler.go

package jump

import (
	"encoding/json"
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
	r.Route("/jumps", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListJumps)
		r.Get("/{jumpID}", h.GetJump)
	})
}

// RegisterAdminRoutes registers catalog management endpoints.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/jumps", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Post("/", h.CreateJump)
		r.Put("/{jumpID}", h.UpdateJump)
		r.Delete("/{jumpID}", h.DeleteJump)
	})
}

// ListJumps returns the catalog entries visible to the requester's role.
func (h *Handler) ListJumps(w http.ResponseWriter, r *http.Request) {
	role := middleware.GetUserRole(r.Context())

	jumps, err := h.service.ListForRole(r.Context(), role)
	if err != nil {
		core.WriteDomainError(w, "jumps", err)
		return
	}

	core.OK(w, jumps)
}

func (h *Handler) GetJump(w http.ResponseWriter, r *http.Request) {
	j, err := h.service.GetJump(r.Context(), chi.URLParam(r, "jumpID"))
	if err != nil {
		core.WriteDomainError(w, "jump", err)
		return
	}

	core.OK(w, j)
}

func (h *Handler) CreateJump(w http.ResponseWriter, r *http.Request) {
	var req CreateJumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	j, err := h.service.CreateJump(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "jump", err)
		return
	}

	core.Created(w, j)
}

func (h *Handler) UpdateJump(w http.ResponseWriter, r *http.Request) {
	var req UpdateJumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	j, err := h.service.UpdateJump(r.Context(), chi.URLParam(r, "jumpID"), req)
	if err != nil {
		core.WriteDomainError(w, "jump", err)
		return
	}

	core.OK(w, j)
}

// DeleteJump removes a catalog entry unless a project still references it.
func (h *Handler) DeleteJump(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteJump(r.Context(), chi.URLParam(r, "jumpID")); err != nil {
		core.WriteDomainError(w, "jump", err)
		return
	}

	core.NoContent(w)
}
