// AngelaMos | 2026
// service_test.go

package project

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/task"
)

type stubUsers struct {
	roles map[string]string
}

func (s stubUsers) RoleOf(_ context.Context, id string) (string, error) {
	role, ok := s.roles[id]
	if !ok {
		return "", fmt.Errorf("user %q: %w", id, core.ErrNotFound)
	}
	return role, nil
}

type stubJumps struct {
	ids map[string]bool
}

func (s stubJumps) Exists(_ context.Context, id string) (bool, error) {
	return s.ids[id], nil
}

type fixture struct {
	svc      *Service
	projects *store.Collection[Project, *Project]
	tasks    *store.Collection[task.Task, *task.Task]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := store.NewMemoryKV()
	projects := store.NewCollection[Project](kv, "test", store.CollectionProjects)
	tasks := store.NewCollection[task.Task](kv, "test", store.CollectionTasks)

	users := stubUsers{roles: map[string]string{
		"client-1":  "client",
		"copilot-1": "copilot",
	}}
	jumps := stubJumps{ids: map[string]bool{"jump-1": true}}

	return &fixture{
		svc:      NewService(projects, tasks, users, jumps, nil),
		projects: projects,
		tasks:    tasks,
	}
}

func validRequest() CreateProjectRequest {
	return CreateProjectRequest{
		Name:       "Onboarding Automation",
		ClientID:   "client-1",
		CopilotID:  "copilot-1",
		Status:     StatusPlanned,
		TotalPrice: 4200,
		OriginType: OriginCustom,
	}
}

func TestCreateProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateProject(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "client-1", created.ClientID)
}

func TestCreateProjectFromJump(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := validRequest()
	req.OriginType = OriginJump
	req.JumpID = "jump-1"

	created, err := f.svc.CreateProject(ctx, req)
	require.NoError(t, err)
	assert.True(t, created.FromJump())
}

func TestCreateProjectValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateProjectRequest)
	}{
		{"unknown client", func(r *CreateProjectRequest) { r.ClientID = "ghost" }},
		{"client role mismatch", func(r *CreateProjectRequest) { r.ClientID = "copilot-1" }},
		{"unknown copilot", func(r *CreateProjectRequest) { r.CopilotID = "ghost" }},
		{"copilot role mismatch", func(r *CreateProjectRequest) { r.CopilotID = "client-1" }},
		{"jump origin without jumpId", func(r *CreateProjectRequest) {
			r.OriginType = OriginJump
			r.JumpID = ""
		}},
		{"jump origin with unknown jumpId", func(r *CreateProjectRequest) {
			r.OriginType = OriginJump
			r.JumpID = "ghost-jump"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			req := validRequest()
			tc.mutate(&req)

			_, err := f.svc.CreateProject(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrValidation)

			// nothing was written
			count, err := f.projects.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestUpdateProjectRevalidatesReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateProject(ctx, validRequest())
	require.NoError(t, err)

	badCopilot := "client-1"
	_, err = f.svc.UpdateProject(ctx, created.ID, UpdateProjectRequest{
		CopilotID: &badCopilot,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValidation)

	unchanged, err := f.svc.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "copilot-1", unchanged.CopilotID)

	status := StatusInProgress
	updated, err := f.svc.UpdateProject(ctx, created.ID, UpdateProjectRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestDeleteProjectCascadesTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateProject(ctx, validRequest())
	require.NoError(t, err)

	for _, name := range []string{"setup", "build"} {
		_, err := f.tasks.Create(ctx, task.Task{
			Name:      name,
			ProjectID: created.ID,
			CopilotID: "copilot-1",
			Status:    task.StatusPending,
		})
		require.NoError(t, err)
	}
	_, err = f.tasks.Create(ctx, task.Task{
		Name:      "unrelated",
		ProjectID: "other-project",
		CopilotID: "copilot-1",
		Status:    task.StatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteProject(ctx, created.ID))

	_, err = f.svc.GetProject(ctx, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	remaining, err := f.tasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "unrelated", remaining[0].Name)
}

func TestDeleteProjectUnknownID(t *testing.T) {
	f := newFixture(t)

	err := f.svc.DeleteProject(context.Background(), "no-such-project")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestParticipants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateProject(ctx, validRequest())
	require.NoError(t, err)

	clientID, copilotID, err := f.svc.Participants(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "client-1", clientID)
	assert.Equal(t, "copilot-1", copilotID)

	_, _, err = f.svc.Participants(ctx, "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
