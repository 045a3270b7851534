// AngelaMos | 2026
// views_test.go

package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/jump"
	"github.com/angelamos/copilothub/internal/project"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/task"
	"github.com/angelamos/copilothub/internal/user"
)

type fixture struct {
	builder  *Builder
	users    *store.Collection[user.User, *user.User]
	jumps    *store.Collection[jump.Jump, *jump.Jump]
	projects *store.Collection[project.Project, *project.Project]
	tasks    *store.Collection[task.Task, *task.Task]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := store.NewMemoryKV()
	users := store.NewCollection[user.User](kv, "test", store.CollectionUsers)
	jumps := store.NewCollection[jump.Jump](kv, "test", store.CollectionJumps)
	projects := store.NewCollection[project.Project](kv, "test", store.CollectionProjects)
	tasks := store.NewCollection[task.Task](kv, "test", store.CollectionTasks)

	return &fixture{
		builder:  NewBuilder(users, jumps, projects, tasks),
		users:    users,
		jumps:    jumps,
		projects: projects,
		tasks:    tasks,
	}
}

func (f *fixture) createUser(t *testing.T, name, role string) *user.User {
	t.Helper()

	u, err := f.users.Create(context.Background(), user.User{
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return u
}

func TestProjectWithDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	client := f.createUser(t, "client", user.RoleClient)
	copilot := f.createUser(t, "copilot", user.RoleCopilot)

	j, err := f.jumps.Create(ctx, jump.Jump{Name: "Support Assistant"})
	require.NoError(t, err)

	p, err := f.projects.Create(ctx, project.Project{
		Name:       "Rollout",
		ClientID:   client.ID,
		CopilotID:  copilot.ID,
		OriginType: project.OriginJump,
		JumpID:     j.ID,
	})
	require.NoError(t, err)

	_, err = f.tasks.Create(ctx, task.Task{
		Name:      "Setup",
		ProjectID: p.ID,
		CopilotID: copilot.ID,
	})
	require.NoError(t, err)

	view, err := f.builder.ProjectWithDetails(ctx, p.ID)
	require.NoError(t, err)

	require.NotNil(t, view.Client)
	assert.Equal(t, client.ID, view.Client.ID)
	require.NotNil(t, view.Copilot)
	assert.Equal(t, copilot.ID, view.Copilot.ID)
	require.NotNil(t, view.Jump)
	assert.Equal(t, j.ID, view.Jump.ID)
	require.Len(t, view.Tasks, 1)
	assert.Equal(t, "Setup", view.Tasks[0].Name)
}

// Dangling references come back null; only a missing project fails the view.
func TestProjectWithDetailsDanglingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.projects.Create(ctx, project.Project{
		Name:      "Orphaned",
		ClientID:  "gone-client",
		CopilotID: "gone-copilot",
		JumpID:    "gone-jump",
	})
	require.NoError(t, err)

	view, err := f.builder.ProjectWithDetails(ctx, p.ID)
	require.NoError(t, err)

	assert.Nil(t, view.Client)
	assert.Nil(t, view.Copilot)
	assert.Nil(t, view.Jump)
	assert.Empty(t, view.Tasks)

	_, err = f.builder.ProjectWithDetails(ctx, "no-such-project")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUserWithProjects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	client := f.createUser(t, "client", user.RoleClient)
	copilot := f.createUser(t, "copilot", user.RoleCopilot)
	admin := f.createUser(t, "admin", user.RoleAdmin)

	_, err := f.projects.Create(ctx, project.Project{
		Name:      "Shared",
		ClientID:  client.ID,
		CopilotID: copilot.ID,
	})
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, project.Project{
		Name:      "Client only",
		ClientID:  client.ID,
		CopilotID: "other-copilot",
	})
	require.NoError(t, err)

	clientView, err := f.builder.UserWithProjects(ctx, client.ID)
	require.NoError(t, err)
	assert.Len(t, clientView.Projects, 2)

	copilotView, err := f.builder.UserWithProjects(ctx, copilot.ID)
	require.NoError(t, err)
	require.Len(t, copilotView.Projects, 1)
	assert.Equal(t, "Shared", copilotView.Projects[0].Name)

	adminView, err := f.builder.UserWithProjects(ctx, admin.ID)
	require.NoError(t, err)
	assert.Empty(t, adminView.Projects)

	_, err = f.builder.UserWithProjects(ctx, "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestJumpWithDetails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	copilot := f.createUser(t, "copilot", user.RoleCopilot)

	j, err := f.jumps.Create(ctx, jump.Jump{
		Name:              "Document Pipeline",
		SuggestedCopilots: []string{copilot.ID, "gone-copilot"},
	})
	require.NoError(t, err)

	_, err = f.projects.Create(ctx, project.Project{
		Name:       "Derived",
		OriginType: project.OriginJump,
		JumpID:     j.ID,
	})
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, project.Project{
		Name:       "Unrelated",
		OriginType: project.OriginCustom,
	})
	require.NoError(t, err)

	view, err := f.builder.JumpWithDetails(ctx, j.ID)
	require.NoError(t, err)

	require.Len(t, view.Projects, 1)
	assert.Equal(t, "Derived", view.Projects[0].Name)

	// unresolved suggestions are dropped, not nulled
	require.Len(t, view.SuggestedCopilots, 1)
	assert.Equal(t, copilot.ID, view.SuggestedCopilots[0].ID)

	_, err = f.builder.JumpWithDetails(ctx, "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
