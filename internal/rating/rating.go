// AngelaMos | 2026
// rating.go

package rating

import (
	"context"

	"github.com/angelamos/copilothub/internal/store"
)

// Rating is a client's score of a copilot's work on a project.
type Rating struct {
	store.Meta
	ProjectID string `json:"projectId"`
	ClientID  string `json:"clientId"`
	CopilotID string `json:"copilotId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment,omitempty"`
}

type CreateRatingRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
	ClientID  string `json:"clientId"  validate:"required"`
	CopilotID string `json:"copilotId" validate:"required"`
	Score     int    `json:"score"     validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"   validate:"max=2000"`
}

type Service struct {
	ratings *store.Collection[Rating, *Rating]
}

func NewService(ratings *store.Collection[Rating, *Rating]) *Service {
	return &Service{ratings: ratings}
}

func (s *Service) GetRating(ctx context.Context, id string) (*Rating, error) {
	return s.ratings.GetByID(ctx, id)
}

func (s *Service) ListRatings(ctx context.Context) ([]Rating, error) {
	return s.ratings.List(ctx)
}

func (s *Service) ByCopilot(ctx context.Context, copilotID string) ([]Rating, error) {
	return s.ratings.Filter(ctx, func(r Rating) bool {
		return r.CopilotID == copilotID
	})
}

// AverageForCopilot returns the mean score across a copilot's ratings, or
// zero when there are none.
func (s *Service) AverageForCopilot(ctx context.Context, copilotID string) (float64, error) {
	ratings, err := s.ByCopilot(ctx, copilotID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}

	var sum int
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings)), nil
}

func (s *Service) CreateRating(ctx context.Context, req CreateRatingRequest) (*Rating, error) {
	return s.ratings.Create(ctx, Rating{
		ProjectID: req.ProjectID,
		ClientID:  req.ClientID,
		CopilotID: req.CopilotID,
		Score:     req.Score,
		Comment:   req.Comment,
	})
}

func (s *Service) DeleteRating(ctx context.Context, id string) error {
	if _, err := s.ratings.GetByID(ctx, id); err != nil {
		return err
	}

	return s.ratings.Delete(ctx, id)
}
