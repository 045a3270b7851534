// AngelaMos | 2026
// handler.go

package message

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
	r.Route("/messages", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListMessages)
		r.Post("/", h.CreateMessage)
		r.Get("/conversation", h.Conversation)
		r.Get("/{messageID}", h.GetMessage)
		r.Post("/{messageID}/read", h.MarkRead)
		r.Delete("/{messageID}", h.DeleteMessage)
	})
}

// ListMessages returns all messages, optionally filtered by project.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	var (
		msgs []Message
		err  error
	)

	if projectID := r.URL.Query().Get("projectId"); projectID != "" {
		msgs, err = h.service.ByProject(r.Context(), projectID)
	} else {
		msgs, err = h.service.ListMessages(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "messages", err)
		return
	}

	core.OK(w, msgs)
}

// Conversation returns the thread between the requester and ?with=<userID>,
// oldest first.
func (h *Handler) Conversation(w http.ResponseWriter, r *http.Request) {
	other := r.URL.Query().Get("with")
	if other == "" {
		core.BadRequest(w, "query parameter 'with' is required")
		return
	}

	requester := middleware.GetUserID(r.Context())

	msgs, err := h.service.ConversationBetween(r.Context(), requester, other)
	if err != nil {
		core.WriteDomainError(w, "messages", err)
		return
	}

	core.OK(w, msgs)
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.GetMessage(r.Context(), chi.URLParam(r, "messageID"))
	if err != nil {
		core.WriteDomainError(w, "message", err)
		return
	}

	core.OK(w, m)
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	m, err := h.service.CreateMessage(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "message", err)
		return
	}

	core.Created(w, m)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.MarkRead(r.Context(), chi.URLParam(r, "messageID"))
	if err != nil {
		core.WriteDomainError(w, "message", err)
		return
	}

	core.OK(w, m)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMessage(r.Context(), chi.URLParam(r, "messageID")); err != nil {
		core.WriteDomainError(w, "message", err)
		return
	}

	core.NoContent(w)
}
