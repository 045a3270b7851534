// AngelaMos | 2026
// handler.go

package invoice

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
	r.Route("/invoices", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListInvoices)
		r.Post("/", h.CreateInvoice)
		r.Get("/{invoiceID}", h.GetInvoice)
		r.Put("/{invoiceID}", h.UpdateInvoice)
		r.Delete("/{invoiceID}", h.DeleteInvoice)
	})
}

// ListInvoices returns all invoices, optionally filtered by client or
// project.
func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	var (
		invoices []Invoice
		err      error
	)

	switch {
	case r.URL.Query().Get("clientId") != "":
		invoices, err = h.service.ByClient(r.Context(), r.URL.Query().Get("clientId"))
	case r.URL.Query().Get("projectId") != "":
		invoices, err = h.service.ByProject(r.Context(), r.URL.Query().Get("projectId"))
	default:
		invoices, err = h.service.ListInvoices(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "invoices", err)
		return
	}

	core.OK(w, invoices)
}

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.service.GetInvoice(r.Context(), chi.URLParam(r, "invoiceID"))
	if err != nil {
		core.WriteDomainError(w, "invoice", err)
		return
	}

	core.OK(w, inv)
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	inv, err := h.service.CreateInvoice(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "invoice", err)
		return
	}

	core.Created(w, inv)
}

func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	var req UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	inv, err := h.service.UpdateInvoice(r.Context(), chi.URLParam(r, "invoiceID"), req)
	if err != nil {
		core.WriteDomainError(w, "invoice", err)
		return
	}

	core.OK(w, inv)
}

func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteInvoice(r.Context(), chi.URLParam(r, "invoiceID")); err != nil {
		core.WriteDomainError(w, "invoice", err)
		return
	}

	core.NoContent(w)
}
