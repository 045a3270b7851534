// AngelaMos | 2026
// seed_test.go

package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/jump"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/user"
)

func newTestSeeder(t *testing.T) (
	*Seeder,
	*store.Collection[user.User, *user.User],
	*store.Collection[jump.Jump, *jump.Jump],
) {
	t.Helper()

	kv := store.NewMemoryKV()
	users := store.NewCollection[user.User](kv, "test", store.CollectionUsers)
	jumps := store.NewCollection[jump.Jump](kv, "test", store.CollectionJumps)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSeeder(users, jumps, logger), users, jumps
}

func TestRunSeedsStarterData(t *testing.T) {
	seeder, users, jumps := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))

	seededUsers, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, seededUsers, 3)

	roles := map[string]int{}
	var copilotID string
	for _, u := range seededUsers {
		roles[u.Role]++
		assert.NotEmpty(t, u.PasswordHash)
		if u.Role == user.RoleCopilot {
			copilotID = u.ID
			assert.NotNil(t, u.Copilot)
		}
		if u.Role == user.RoleClient {
			assert.NotNil(t, u.Client)
		}
	}
	assert.Equal(t, map[string]int{
		user.RoleAdmin:   1,
		user.RoleCopilot: 1,
		user.RoleClient:  1,
	}, roles)

	seededJumps, err := jumps.List(ctx)
	require.NoError(t, err)
	require.Len(t, seededJumps, 3)

	for _, j := range seededJumps {
		assert.Equal(t, jump.StatusActive, j.Status)
		assert.Equal(t, []string{copilotID}, j.SuggestedCopilots)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	seeder, users, jumps := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	userCount, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, userCount)

	jumpCount, err := jumps.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, jumpCount)
}

func TestRunSkipsNonEmptyDeployment(t *testing.T) {
	seeder, users, jumps := newTestSeeder(t)
	ctx := context.Background()

	_, err := users.Create(ctx, user.User{
		Name:  "Existing",
		Email: "existing@example.com",
		Role:  user.RoleAdmin,
	})
	require.NoError(t, err)

	require.NoError(t, seeder.Run(ctx))

	userCount, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, userCount)

	jumpCount, err := jumps.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, jumpCount)
}
