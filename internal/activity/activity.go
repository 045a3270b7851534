// AngelaMos | 2026
// activity.go

package activity

import (
	"context"
	"log/slog"

	"github.com/angelamos/copilothub/internal/store"
)

// Entry is one append-only audit record. Entries are never updated or
// deleted through the service.
type Entry struct {
	store.Meta
	UserID      string `json:"userId,omitempty"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

type Service struct {
	entries *store.Collection[Entry, *Entry]
	logger  *slog.Logger
}

func NewService(
	entries *store.Collection[Entry, *Entry],
	logger *slog.Logger,
) *Service {
	return &Service{
		entries: entries,
		logger:  logger,
	}
}

// Record appends an audit entry. Callers treat it as best-effort; the error
// return lets them decide.
func (s *Service) Record(
	ctx context.Context,
	userID, action, description string,
) error {
	_, err := s.entries.Create(ctx, Entry{
		UserID:      userID,
		Action:      action,
		Description: description,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit entry not recorded",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}

func (s *Service) ListEntries(ctx context.Context) ([]Entry, error) {
	return s.entries.List(ctx)
}

func (s *Service) ByUser(ctx context.Context, userID string) ([]Entry, error) {
	return s.entries.Filter(ctx, func(e Entry) bool {
		return e.UserID == userID
	})
}
