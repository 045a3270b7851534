// AngelaMos | 2026
// views.go

package views

import (
	"context"
	"errors"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/jump"
	"github.com/angelamos/copilothub/internal/project"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/task"
	"github.com/angelamos/copilothub/internal/user"
)

// ProjectWithDetails is a project joined with its resolved participants,
// optional catalog origin and task list. Unresolved references come back
// null rather than failing the view.
type ProjectWithDetails struct {
	project.Project
	Client  *user.UserResponse `json:"client"`
	Copilot *user.UserResponse `json:"copilot"`
	Jump    *jump.Jump         `json:"jump"`
	Tasks   []task.Task        `json:"tasks"`
}

// UserWithProjects is a user joined with the projects they participate in:
// as client for clients, as copilot for copilots, none for admins.
type UserWithProjects struct {
	user.UserResponse
	Projects []project.Project `json:"projects"`
}

// JumpWithDetails is a catalog entry joined with the projects built from it
// and its resolved suggested copilots. Suggestions that no longer resolve
// are dropped silently.
type JumpWithDetails struct {
	jump.Jump
	Projects          []project.Project   `json:"projects"`
	SuggestedCopilots []user.UserResponse `json:"suggestedCopilots"`
}

// Builder assembles read-only composite snapshots. It reads the collections
// directly and performs no writes.
type Builder struct {
	users    *store.Collection[user.User, *user.User]
	jumps    *store.Collection[jump.Jump, *jump.Jump]
	projects *store.Collection[project.Project, *project.Project]
	tasks    *store.Collection[task.Task, *task.Task]
}

func NewBuilder(
	users *store.Collection[user.User, *user.User],
	jumps *store.Collection[jump.Jump, *jump.Jump],
	projects *store.Collection[project.Project, *project.Project],
	tasks *store.Collection[task.Task, *task.Task],
) *Builder {
	return &Builder{
		users:    users,
		jumps:    jumps,
		projects: projects,
		tasks:    tasks,
	}
}

// ProjectWithDetails fails only when the project itself is missing.
func (b *Builder) ProjectWithDetails(
	ctx context.Context,
	projectID string,
) (*ProjectWithDetails, error) {
	p, err := b.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	view := &ProjectWithDetails{Project: *p, Tasks: []task.Task{}}

	view.Client, err = b.resolveUser(ctx, p.ClientID)
	if err != nil {
		return nil, err
	}

	view.Copilot, err = b.resolveUser(ctx, p.CopilotID)
	if err != nil {
		return nil, err
	}

	if p.JumpID != "" {
		j, err := b.jumps.GetByID(ctx, p.JumpID)
		switch {
		case err == nil:
			view.Jump = j
		case !errors.Is(err, core.ErrNotFound):
			return nil, err
		}
	}

	view.Tasks, err = b.tasks.Filter(ctx, func(t task.Task) bool {
		return t.ProjectID == projectID
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (b *Builder) UserWithProjects(
	ctx context.Context,
	userID string,
) (*UserWithProjects, error) {
	u, err := b.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &UserWithProjects{
		UserResponse: user.ToUserResponse(u),
		Projects:     []project.Project{},
	}

	var pred func(project.Project) bool
	switch u.Role {
	case user.RoleClient:
		pred = func(p project.Project) bool { return p.ClientID == userID }
	case user.RoleCopilot:
		pred = func(p project.Project) bool { return p.CopilotID == userID }
	default:
		// admins participate in no projects
		return view, nil
	}

	view.Projects, err = b.projects.Filter(ctx, pred)
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (b *Builder) JumpWithDetails(
	ctx context.Context,
	jumpID string,
) (*JumpWithDetails, error) {
	j, err := b.jumps.GetByID(ctx, jumpID)
	if err != nil {
		return nil, err
	}

	view := &JumpWithDetails{
		Jump:              *j,
		Projects:          []project.Project{},
		SuggestedCopilots: []user.UserResponse{},
	}

	view.Projects, err = b.projects.Filter(ctx, func(p project.Project) bool {
		return p.JumpID == jumpID
	})
	if err != nil {
		return nil, err
	}

	for _, id := range j.SuggestedCopilots {
		resolved, err := b.resolveUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			continue
		}
		view.SuggestedCopilots = append(view.SuggestedCopilots, *resolved)
	}

	return view, nil
}

// resolveUser returns nil without error when the user does not exist.
func (b *Builder) resolveUser(
	ctx context.Context,
	id string,
) (*user.UserResponse, error) {
	if id == "" {
		return nil, nil
	}

	u, err := b.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := user.ToUserResponse(u)
	return &resp, nil
}
