// AngelaMos | 2026
// service_test.go

package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

type stubProjects struct {
	// projectID -> [clientID, copilotID]
	participants map[string][2]string
}

func (s stubProjects) Participants(
	_ context.Context,
	projectID string,
) (string, string, error) {
	p, ok := s.participants[projectID]
	if !ok {
		return "", "", fmt.Errorf("project %q: %w", projectID, core.ErrNotFound)
	}
	return p[0], p[1], nil
}

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

type fixture struct {
	svc   *Service
	tasks *store.Collection[Task, *Task]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tasks := store.NewCollection[Task](store.NewMemoryKV(), "test", store.CollectionTasks)

	projects := stubProjects{participants: map[string][2]string{
		"project-1": {"client-1", "copilot-1"},
	}}
	users := stubUsers{roles: map[string]string{
		"client-1":  "client",
		"copilot-1": "copilot",
		"copilot-2": "copilot",
	}}

	return &fixture{
		svc:   NewService(tasks, projects, users),
		tasks: tasks,
	}
}

func validRequest() CreateTaskRequest {
	return CreateTaskRequest{
		Name:           "Wire the intake flow",
		ProjectID:      "project-1",
		CopilotID:      "copilot-1",
		Status:         StatusPending,
		EstimatedHours: 6,
	}
}

func TestCreateTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTask(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "project-1", created.ProjectID)
}

func TestCreateTaskValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateTaskRequest)
	}{
		{"unknown project", func(r *CreateTaskRequest) { r.ProjectID = "ghost" }},
		{"unknown copilot", func(r *CreateTaskRequest) { r.CopilotID = "ghost" }},
		{"copilot role mismatch", func(r *CreateTaskRequest) { r.CopilotID = "client-1" }},
		{"copilot not assigned to project", func(r *CreateTaskRequest) { r.CopilotID = "copilot-2" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			req := validRequest()
			tc.mutate(&req)

			_, err := f.svc.CreateTask(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrValidation)

			count, err := f.tasks.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

// The assigned-copilot invariant holds on update exactly as on create.
func TestUpdateTaskRevalidatesReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTask(ctx, validRequest())
	require.NoError(t, err)

	other := "copilot-2"
	_, err = f.svc.UpdateTask(ctx, created.ID, UpdateTaskRequest{
		CopilotID: &other,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValidation)

	unchanged, err := f.svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "copilot-1", unchanged.CopilotID)

	status := StatusCompleted
	updated, err := f.svc.UpdateTask(ctx, created.ID, UpdateTaskRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
}

func TestUpdateTaskUnknownID(t *testing.T) {
	f := newFixture(t)

	name := "renamed"
	_, err := f.svc.UpdateTask(context.Background(), "ghost", UpdateTaskRequest{
		Name: &name,
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTask(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteTask(ctx, created.ID))

	_, err = f.svc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = f.svc.DeleteTask(ctx, created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestTaskListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateTask(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.Name = "Review handoff"
	_, err = f.svc.CreateTask(ctx, second)
	require.NoError(t, err)

	byProject, err := f.svc.ByProject(ctx, "project-1")
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	byCopilot, err := f.svc.ByCopilot(ctx, "copilot-1")
	require.NoError(t, err)
	assert.Len(t, byCopilot, 2)

	none, err := f.svc.ByProject(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}
