// AngelaMos | 2026
// service.go

package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/task"
)

// Tasks belong to their project; deleting a project removes its tasks first
// instead of refusing.
const taskPolicy = store.CascadeDelete

// UserDirectory resolves a user ID to its role. Implemented by the user
// service; declared here so the import graph stays one-way.
type UserDirectory interface {
	RoleOf(ctx context.Context, id string) (string, error)
}

type JumpDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type AuditLog interface {
	Record(ctx context.Context, userID, action, description string) error
}

type Service struct {
	projects *store.Collection[Project, *Project]
	tasks    *store.Collection[task.Task, *task.Task]
	users    UserDirectory
	jumps    JumpDirectory
	audit    AuditLog
}

func NewService(
	projects *store.Collection[Project, *Project],
	tasks *store.Collection[task.Task, *task.Task],
	users UserDirectory,
	jumps JumpDirectory,
	audit AuditLog,
) *Service {
	return &Service{
		projects: projects,
		tasks:    tasks,
		users:    users,
		jumps:    jumps,
		audit:    audit,
	}
}

func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	return s.projects.List(ctx)
}

func (s *Service) ByClient(ctx context.Context, clientID string) ([]Project, error) {
	return s.projects.Filter(ctx, func(p Project) bool {
		return p.ClientID == clientID
	})
}

func (s *Service) ByCopilot(ctx context.Context, copilotID string) ([]Project, error) {
	return s.projects.Filter(ctx, func(p Project) bool {
		return p.CopilotID == copilotID
	})
}

// Participants returns the client and copilot of a project.
func (s *Service) Participants(
	ctx context.Context,
	projectID string,
) (clientID, copilotID string, err error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return "", "", err
	}
	return p.ClientID, p.CopilotID, nil
}

func (s *Service) CreateProject(
	ctx context.Context,
	req CreateProjectRequest,
) (*Project, error) {
	p := Project{
		Name:             req.Name,
		ClientID:         req.ClientID,
		CopilotID:        req.CopilotID,
		Status:           req.Status,
		StartDate:        req.StartDate,
		EstimatedEndDate: req.EstimatedEndDate,
		TotalPrice:       req.TotalPrice,
		EstimatedHours:   req.EstimatedHours,
		OriginType:       req.OriginType,
		JumpID:           req.JumpID,
	}

	if err := s.validateReferences(ctx, &p); err != nil {
		return nil, err
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, created.ClientID, "project_created", "project "+created.Name+" created")
	return created, nil
}

func (s *Service) UpdateProject(
	ctx context.Context,
	id string,
	req UpdateProjectRequest,
) (*Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ClientID != nil {
		p.ClientID = *req.ClientID
	}
	if req.CopilotID != nil {
		p.CopilotID = *req.CopilotID
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EstimatedEndDate != nil {
		p.EstimatedEndDate = *req.EstimatedEndDate
	}
	if req.TotalPrice != nil {
		p.TotalPrice = *req.TotalPrice
	}
	if req.EstimatedHours != nil {
		p.EstimatedHours = *req.EstimatedHours
	}
	if req.OriginType != nil {
		p.OriginType = *req.OriginType
	}
	if req.JumpID != nil {
		p.JumpID = *req.JumpID
	}

	if err := s.validateReferences(ctx, p); err != nil {
		return nil, err
	}

	return s.projects.Update(ctx, *p)
}

// DeleteProject cascades: the project's tasks are removed in one collection
// write, then the project itself.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := s.tasks.DeleteWhere(ctx, func(t task.Task) bool {
		return t.ProjectID == id
	}); err != nil {
		return fmt.Errorf("cascade tasks: %w", err)
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, "", "project_deleted", "project "+id+" deleted")
	return nil
}

// validateReferences enforces the cross-collection invariants before any
// write: clientId must resolve to a client, copilotId to a copilot, and a
// jump-originated project must name an existing jump.
func (s *Service) validateReferences(ctx context.Context, p *Project) error {
	clientRole, err := s.users.RoleOf(ctx, p.ClientID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("clientId %q does not resolve to a user: %w", p.ClientID, core.ErrValidation)
		}
		return err
	}
	if clientRole != "client" {
		return fmt.Errorf("clientId %q is not a client: %w", p.ClientID, core.ErrValidation)
	}

	copilotRole, err := s.users.RoleOf(ctx, p.CopilotID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("copilotId %q does not resolve to a user: %w", p.CopilotID, core.ErrValidation)
		}
		return err
	}
	if copilotRole != "copilot" {
		return fmt.Errorf("copilotId %q is not a copilot: %w", p.CopilotID, core.ErrValidation)
	}

	if p.FromJump() {
		if p.JumpID == "" {
			return fmt.Errorf("jumpId is required for jump-originated projects: %w", core.ErrValidation)
		}

		exists, err := s.jumps.Exists(ctx, p.JumpID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("jumpId %q does not resolve to a jump: %w", p.JumpID, core.ErrValidation)
		}
	}

	return nil
}

func (s *Service) recordActivity(ctx context.Context, userID, action, description string) {
	if s.audit == nil {
		return
	}
	//nolint:errcheck // audit trail is best-effort
	_ = s.audit.Record(ctx, userID, action, description)
}
