// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/project"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/task"
)

type fixture struct {
	svc      *Service
	users    *store.Collection[User, *User]
	projects *store.Collection[project.Project, *project.Project]
	tasks    *store.Collection[task.Task, *task.Task]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := store.NewMemoryKV()
	users := store.NewCollection[User](kv, "test", store.CollectionUsers)
	projects := store.NewCollection[project.Project](kv, "test", store.CollectionProjects)
	tasks := store.NewCollection[task.Task](kv, "test", store.CollectionTasks)

	return &fixture{
		svc:      NewService(users, projects, tasks, nil, nil),
		users:    users,
		projects: projects,
		tasks:    tasks,
	}
}

func (f *fixture) createUser(t *testing.T, email, role string) *User {
	t.Helper()

	u, err := f.svc.AdminCreate(context.Background(), CreateUserRequest{
		Email:    email,
		Password: "correct-horse-battery",
		Name:     "Test User",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestAdminCreateAttachesRoleProfile(t *testing.T) {
	f := newFixture(t)

	client := f.createUser(t, "Client@Example.com", RoleClient)
	assert.Equal(t, "client@example.com", client.Email)
	assert.NotNil(t, client.Client)
	assert.Nil(t, client.Copilot)

	copilot := f.createUser(t, "copilot@example.com", RoleCopilot)
	assert.NotNil(t, copilot.Copilot)
	assert.Nil(t, copilot.Client)

	admin := f.createUser(t, "admin@example.com", RoleAdmin)
	assert.Nil(t, admin.Copilot)
	assert.Nil(t, admin.Client)
}

func TestAdminCreateRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createUser(t, "taken@example.com", RoleClient)

	_, err := f.svc.AdminCreate(ctx, CreateUserRequest{
		Email:    "TAKEN@example.com",
		Password: "correct-horse-battery",
		Name:     "Second",
		Role:     RoleCopilot,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)

	count, err := f.users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdminCreateRejectsInvalidRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.AdminCreate(context.Background(), CreateUserRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse-battery",
		Name:     "Nobody",
		Role:     "superuser",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestDeleteUserRefusedWhileReferenced(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	copilot := f.createUser(t, "copilot@example.com", RoleCopilot)
	client := f.createUser(t, "client@example.com", RoleClient)

	p, err := f.projects.Create(ctx, project.Project{
		Name:      "Rollout",
		ClientID:  client.ID,
		CopilotID: copilot.ID,
		Status:    project.StatusPlanned,
	})
	require.NoError(t, err)

	err = f.svc.DeleteUser(ctx, copilot.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConflict)

	require.NoError(t, f.projects.Delete(ctx, p.ID))

	tk, err := f.tasks.Create(ctx, task.Task{
		Name:      "Setup",
		ProjectID: "gone",
		CopilotID: copilot.ID,
		Status:    task.StatusPending,
	})
	require.NoError(t, err)

	err = f.svc.DeleteUser(ctx, copilot.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConflict)

	require.NoError(t, f.tasks.Delete(ctx, tk.ID))

	require.NoError(t, f.svc.DeleteUser(ctx, copilot.ID))

	_, err = f.svc.GetUser(ctx, copilot.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteUserUnknownID(t *testing.T) {
	f := newFixture(t)

	err := f.svc.DeleteUser(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCanDeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.createUser(t, "admin@example.com", RoleAdmin)
	otherAdmin := f.createUser(t, "admin2@example.com", RoleAdmin)
	client := f.createUser(t, "client@example.com", RoleClient)

	// self-deletion is always allowed
	assert.NoError(t, f.svc.CanDeleteUser(ctx, client.ID, client.ID))

	// non-admins cannot delete other users
	err := f.svc.CanDeleteUser(ctx, client.ID, admin.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)

	// admins can delete non-admins
	assert.NoError(t, f.svc.CanDeleteUser(ctx, admin.ID, client.ID))

	// but not other admins
	err = f.svc.CanDeleteUser(ctx, admin.ID, otherAdmin.ID)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUpdateUserRespectsRoleProfiles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	client := f.createUser(t, "client@example.com", RoleClient)

	name := "Renamed"
	updated, err := f.svc.UpdateUser(ctx, client.ID, UpdateUserRequest{
		Name:    &name,
		Client:  &ClientProfile{Company: "Initech", Sector: "software"},
		Copilot: &CopilotProfile{Bio: "should be ignored"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	require.NotNil(t, updated.Client)
	assert.Equal(t, "Initech", updated.Client.Company)
	assert.Nil(t, updated.Copilot)
}

func TestByRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createUser(t, "c1@example.com", RoleClient)
	f.createUser(t, "c2@example.com", RoleClient)
	f.createUser(t, "p1@example.com", RoleCopilot)

	clients, err := f.svc.ByRole(ctx, RoleClient)
	require.NoError(t, err)
	assert.Len(t, clients, 2)

	_, err = f.svc.ByRole(ctx, "intern")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestGetByEmailIsCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.createUser(t, "Mixed.Case@Example.com", RoleClient)

	info, err := f.svc.GetByEmail(ctx, "mixed.case@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, info.ID)
	assert.Equal(t, RoleClient, info.Role)

	_, err = f.svc.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRoleOfAndExists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	copilot := f.createUser(t, "copilot@example.com", RoleCopilot)

	role, err := f.svc.RoleOf(ctx, copilot.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleCopilot, role)

	_, err = f.svc.RoleOf(ctx, "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)

	exists, err := f.svc.Exists(ctx, copilot.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.svc.Exists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}
