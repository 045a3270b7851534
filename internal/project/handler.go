// AngelaMos | 2026
// handler.go

package project

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/copilothub/internal/core"
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
	r.Route("/projects", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListProjects)
		r.Post("/", h.CreateProject)
		r.Get("/{projectID}", h.GetProject)
		r.Put("/{projectID}", h.UpdateProject)
		r.Delete("/{projectID}", h.DeleteProject)
	})
}

// ListProjects returns all projects, optionally filtered by client or
// copilot.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var (
		projects []Project
		err      error
	)

	switch {
	case r.URL.Query().Get("clientId") != "":
		projects, err = h.service.ByClient(r.Context(), r.URL.Query().Get("clientId"))
	case r.URL.Query().Get("copilotId") != "":
		projects, err = h.service.ByCopilot(r.Context(), r.URL.Query().Get("copilotId"))
	default:
		projects, err = h.service.ListProjects(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "projects", err)
		return
	}

	core.OK(w, projects)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		core.WriteDomainError(w, "project", err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.CreateProject(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "project", err)
		return
	}

	core.Created(w, p)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.UpdateProject(r.Context(), chi.URLParam(r, "projectID"), req)
	if err != nil {
		core.WriteDomainError(w, "project", err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProject(r.Context(), chi.URLParam(r, "projectID")); err != nil {
		core.WriteDomainError(w, "project", err)
		return
	}

	core.NoContent(w)
}
