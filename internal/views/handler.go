// AngelaMos | 2026
// handler.go

package views

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/copilothub/internal/core"
)

type Handler struct {
	builder *Builder
}

func NewHandler(builder *Builder) *Handler {
	return &Handler{builder: builder}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/views", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/projects/{projectID}", h.ProjectWithDetails)
		r.Get("/users/{userID}", h.UserWithProjects)
		r.Get("/jumps/{jumpID}", h.JumpWithDetails)
	})
}

func (h *Handler) ProjectWithDetails(w http.ResponseWriter, r *http.Request) {
	view, err := h.builder.ProjectWithDetails(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		core.WriteDomainError(w, "project", err)
		return
	}

	core.OK(w, view)
}

func (h *Handler) UserWithProjects(w http.ResponseWriter, r *http.Request) {
	view, err := h.builder.UserWithProjects(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		core.WriteDomainError(w, "user", err)
		return
	}

	core.OK(w, view)
}

func (h *Handler) JumpWithDetails(w http.ResponseWriter, r *http.Request) {
	view, err := h.builder.JumpWithDetails(r.Context(), chi.URLParam(r, "jumpID"))
	if err != nil {
		core.WriteDomainError(w, "jump", err)
		return
	}

	core.OK(w, view)
}
