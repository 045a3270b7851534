// AngelaMos | 2026
// handler.go

package task

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
	r.Route("/tasks", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/{taskID}", h.GetTask)
		r.Put("/{taskID}", h.UpdateTask)
		r.Delete("/{taskID}", h.DeleteTask)
	})
}

// ListTasks returns all tasks, optionally filtered by project or copilot.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var (
		tasks []Task
		err   error
	)

	switch {
	case r.URL.Query().Get("projectId") != "":
		tasks, err = h.service.ByProject(r.Context(), r.URL.Query().Get("projectId"))
	case r.URL.Query().Get("copilotId") != "":
		tasks, err = h.service.ByCopilot(r.Context(), r.URL.Query().Get("copilotId"))
	default:
		tasks, err = h.service.ListTasks(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "tasks", err)
		return
	}

	core.OK(w, tasks)
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTask(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		core.WriteDomainError(w, "task", err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.CreateTask(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "task", err)
		return
	}

	core.Created(w, t)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.UpdateTask(r.Context(), chi.URLParam(r, "taskID"), req)
	if err != nil {
		core.WriteDomainError(w, "task", err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTask(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		core.WriteDomainError(w, "task", err)
		return
	}

	core.NoContent(w)
}
