// AngelaMos | 2026
// service.go

package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

type ProjectDirectory interface {
	Participants(
		ctx context.Context,
		projectID string,
	) (clientID, copilotID string, err error)
}

type UserDirectory interface {
	RoleOf(ctx context.Context, id string) (string, error)
}

type Service struct {
	tasks    *store.Collection[Task, *Task]
	projects ProjectDirectory
	users    UserDirectory
}

func NewService(
	tasks *store.Collection[Task, *Task],
	projects ProjectDirectory,
	users UserDirectory,
) *Service {
	return &Service{
		tasks:    tasks,
		projects: projects,
		users:    users,
	}
}

func (s *Service) GetTask(ctx context.Context, id string) (*Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *Service) ListTasks(ctx context.Context) ([]Task, error) {
	return s.tasks.List(ctx)
}

func (s *Service) ByProject(ctx context.Context, projectID string) ([]Task, error) {
	return s.tasks.Filter(ctx, func(t Task) bool {
		return t.ProjectID == projectID
	})
}

func (s *Service) ByCopilot(ctx context.Context, copilotID string) ([]Task, error) {
	return s.tasks.Filter(ctx, func(t Task) bool {
		return t.CopilotID == copilotID
	})
}

func (s *Service) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	t := Task{
		Name:           req.Name,
		ProjectID:      req.ProjectID,
		CopilotID:      req.CopilotID,
		Status:         req.Status,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
	}

	if err := s.validateReferences(ctx, &t); err != nil {
		return nil, err
	}

	return s.tasks.Create(ctx, t)
}

func (s *Service) UpdateTask(
	ctx context.Context,
	id string,
	req UpdateTaskRequest,
) (*Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.ProjectID != nil {
		t.ProjectID = *req.ProjectID
	}
	if req.CopilotID != nil {
		t.CopilotID = *req.CopilotID
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
	}
	if req.EstimatedHours != nil {
		t.EstimatedHours = *req.EstimatedHours
	}

	if err := s.validateReferences(ctx, t); err != nil {
		return nil, err
	}

	return s.tasks.Update(ctx, *t)
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return err
	}

	return s.tasks.Delete(ctx, id)
}

// validateReferences enforces that the task's project exists, its copilot
// resolves to a copilot, and the copilot is the one assigned to the project.
// The same invariant holds for create and update.
func (s *Service) validateReferences(ctx context.Context, t *Task) error {
	_, projectCopilot, err := s.projects.Participants(ctx, t.ProjectID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("projectId %q does not resolve to a project: %w", t.ProjectID, core.ErrValidation)
		}
		return err
	}

	role, err := s.users.RoleOf(ctx, t.CopilotID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("copilotId %q does not resolve to a user: %w", t.CopilotID, core.ErrValidation)
		}
		return err
	}
	if role != "copilot" {
		return fmt.Errorf("copilotId %q is not a copilot: %w", t.CopilotID, core.ErrValidation)
	}

	if t.CopilotID != projectCopilot {
		return fmt.Errorf(
			"copilotId %q is not the copilot assigned to project %q: %w",
			t.CopilotID, t.ProjectID, core.ErrValidation,
		)
	}

	return nil
}
