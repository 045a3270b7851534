// AngelaMos | 2026
// service.go

package jump

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/project"
	"github.com/angelamos/copilothub/internal/store"
)

// Deleting a catalog entry that projects were built from would orphan their
// jumpId references, so the delete is refused instead.
const referencePolicy = store.RejectOnReference

type Service struct {
	jumps    *store.Collection[Jump, *Jump]
	projects *store.Collection[project.Project, *project.Project]
}

func NewService(
	jumps *store.Collection[Jump, *Jump],
	projects *store.Collection[project.Project, *project.Project],
) *Service {
	return &Service{
		jumps:    jumps,
		projects: projects,
	}
}

var _ project.JumpDirectory = (*Service)(nil)

func (s *Service) GetJump(ctx context.Context, id string) (*Jump, error) {
	return s.jumps.GetByID(ctx, id)
}

func (s *Service) ListJumps(ctx context.Context) ([]Jump, error) {
	return s.jumps.List(ctx)
}

// ListForRole returns the catalog entries visible to the given role.
func (s *Service) ListForRole(ctx context.Context, role string) ([]Jump, error) {
	return s.jumps.Filter(ctx, func(j Jump) bool {
		return j.VisibleTo(role)
	})
}

// Exists reports whether a jump with the given ID is in the catalog.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.jumps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) CreateJump(ctx context.Context, req CreateJumpRequest) (*Jump, error) {
	j := Jump{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Type:               req.Type,
		Modules:            req.Modules,
		BasePrice:          req.BasePrice,
		CustomizationHours: req.CustomizationHours,
		Visibility:         req.Visibility,
		Status:             req.Status,
		SuggestedCopilots:  req.SuggestedCopilots,
	}

	return s.jumps.Create(ctx, j)
}

func (s *Service) UpdateJump(
	ctx context.Context,
	id string,
	req UpdateJumpRequest,
) (*Jump, error) {
	j, err := s.jumps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		j.Name = *req.Name
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Category != nil {
		j.Category = *req.Category
	}
	if req.Type != nil {
		j.Type = *req.Type
	}
	if req.Modules != nil {
		j.Modules = req.Modules
	}
	if req.BasePrice != nil {
		j.BasePrice = *req.BasePrice
	}
	if req.CustomizationHours != nil {
		j.CustomizationHours = *req.CustomizationHours
	}
	if req.Visibility != nil {
		j.Visibility = *req.Visibility
	}
	if req.Status != nil {
		j.Status = *req.Status
	}
	if req.SuggestedCopilots != nil {
		j.SuggestedCopilots = req.SuggestedCopilots
	}

	return s.jumps.Update(ctx, *j)
}

// DeleteJump refuses while any project still references the jump.
func (s *Service) DeleteJump(ctx context.Context, id string) error {
	if _, err := s.jumps.GetByID(ctx, id); err != nil {
		return err
	}

	if referencePolicy == store.RejectOnReference {
		referenced, err := s.projects.Any(ctx, func(p project.Project) bool {
			return p.JumpID == id
		})
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("jump %q is referenced by a project: %w", id, core.ErrConflict)
		}
	}

	return s.jumps.Delete(ctx, id)
}
