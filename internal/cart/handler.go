// AngelaMos | 2026
// handler.go

package cart

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
	r.Route("/cart", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.GetCart)
		r.Post("/items", h.AddItem)
		r.Delete("/items/{itemID}", h.RemoveItem)
		r.Delete("/", h.ClearCart)
	})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context())
	if err != nil {
		core.WriteDomainError(w, "cart", err)
		return
	}

	core.OK(w, c)
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := h.service.AddItem(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "cart", err)
		return
	}

	core.OK(w, c)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		core.WriteDomainError(w, "cart item", err)
		return
	}

	core.OK(w, c)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Clear(r.Context())
	if err != nil {
		core.WriteDomainError(w, "cart", err)
		return
	}

	core.OK(w, c)
}
