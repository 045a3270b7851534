// AngelaMos | 2026
// handler.go

package ticket

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
	r.Route("/tickets", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListTickets)
		r.Post("/", h.CreateTicket)
		r.Get("/{ticketID}", h.GetTicket)
		r.Put("/{ticketID}", h.UpdateTicket)
		r.Delete("/{ticketID}", h.DeleteTicket)
	})
}

// ListTickets returns all tickets, optionally filtered by user.
func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	var (
		tickets []Ticket
		err     error
	)

	if userID := r.URL.Query().Get("userId"); userID != "" {
		tickets, err = h.service.ByUser(r.Context(), userID)
	} else {
		tickets, err = h.service.ListTickets(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "tickets", err)
		return
	}

	core.OK(w, tickets)
}

func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GetTicket(r.Context(), chi.URLParam(r, "ticketID"))
	if err != nil {
		core.WriteDomainError(w, "ticket", err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.CreateTicket(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "ticket", err)
		return
	}

	core.Created(w, t)
}

func (h *Handler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	var req UpdateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	t, err := h.service.UpdateTicket(r.Context(), chi.URLParam(r, "ticketID"), req)
	if err != nil {
		core.WriteDomainError(w, "ticket", err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTicket(r.Context(), chi.URLParam(r, "ticketID")); err != nil {
		core.WriteDomainError(w, "ticket", err)
		return
	}

	core.NoContent(w)
}
