// AngelaMos | 2026
// handler.go

package activity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/copilothub/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes exposes the audit trail to admins only.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/activity", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListEntries)
	})
}

// ListEntries returns the audit trail, optionally filtered by user.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	var (
		entries []Entry
		err     error
	)

	if userID := r.URL.Query().Get("userId"); userID != "" {
		entries, err = h.service.ByUser(r.Context(), userID)
	} else {
		entries, err = h.service.ListEntries(r.Context())
	}
	if err != nil {
		core.WriteDomainError(w, "activity", err)
		return
	}

	core.OK(w, entries)
}
