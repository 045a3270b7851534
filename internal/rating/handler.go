// AngelaMos | 2026
// handler.go

package rating

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
	r.Route("/ratings", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListRatings)
		r.Get("/average", h.AverageForCopilot)
		r.Post("/", h.CreateRating)
		r.Get("/{ratingID}", h.GetRating)
		r.Delete("/{ratingID}", h.DeleteRating)
	})
}

// ListRatings returns all ratings, optionally filtered by copilot.
func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	var (
		ratings []Rating
		err     error
	)

	if copilotID := r.URL.Query().Get("copilotId"); copilotID != "" {
		ratings, err = h.service.ByCopilot(r.Context(), copilotID)
	} else {
		ratings, err = h.service.ListRatings(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "ratings", err)
		return
	}

	core.OK(w, ratings)
}

func (h *Handler) AverageForCopilot(w http.ResponseWriter, r *http.Request) {
	copilotID := r.URL.Query().Get("copilotId")
	if copilotID == "" {
		core.BadRequest(w, "copilotId query parameter is required")
		return
	}

	avg, err := h.service.AverageForCopilot(r.Context(), copilotID)
	if err != nil {
		core.WriteDomainError(w, "ratings", err)
		return
	}

	core.OK(w, map[string]any{
		"copilotId": copilotID,
		"average":   avg,
	})
}

func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	rt, err := h.service.GetRating(r.Context(), chi.URLParam(r, "ratingID"))
	if err != nil {
		core.WriteDomainError(w, "rating", err)
		return
	}

	core.OK(w, rt)
}

func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rt, err := h.service.CreateRating(r.Context(), req)
	if err != nil {
		core.WriteDomainError(w, "rating", err)
		return
	}

	core.Created(w, rt)
}

func (h *Handler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRating(r.Context(), chi.URLParam(r, "ratingID")); err != nil {
		core.WriteDomainError(w, "rating", err)
		return
	}

	core.NoContent(w)
}
