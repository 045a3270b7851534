// AngelaMos | 2026
// repository_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	tokens := store.NewCollection[RefreshToken](
		store.NewMemoryKV(),
		"test",
		store.CollectionRefreshTokens,
	)
	return NewRepository(tokens)
}

func newToken(userID, familyID string, expiresIn time.Duration) RefreshToken {
	raw, _ := core.GenerateRefreshToken()
	return RefreshToken{
		UserID:    userID,
		TokenHash: core.HashToken(raw),
		FamilyID:  familyID,
		ExpiresAt: time.Now().Add(expiresIn),
	}
}

func TestFindByHash(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	token := newToken("u1", "fam-1", time.Hour)
	created, err := repo.Create(ctx, token)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := repo.FindByHash(ctx, token.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.True(t, found.IsValid())

	_, err = repo.FindByHash(ctx, "unknown-hash")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestMarkAsUsed(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newToken("u1", "fam-1", time.Hour))
	require.NoError(t, err)

	require.NoError(t, repo.MarkAsUsed(ctx, created.ID, "replacement-id"))

	used, err := repo.FindByHash(ctx, created.TokenHash)
	require.NoError(t, err)
	assert.True(t, used.IsUsed)
	require.NotNil(t, used.ReplacedByID)
	assert.Equal(t, "replacement-id", *used.ReplacedByID)
	assert.False(t, used.IsValid())
}

func TestRevokeByFamilyID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, newToken("u1", "fam-1", time.Hour))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newToken("u1", "fam-1", time.Hour))
	require.NoError(t, err)
	other, err := repo.Create(ctx, newToken("u2", "fam-2", time.Hour))
	require.NoError(t, err)

	require.NoError(t, repo.RevokeByFamilyID(ctx, "fam-1"))

	for _, hash := range []string{first.TokenHash, second.TokenHash} {
		tok, err := repo.FindByHash(ctx, hash)
		require.NoError(t, err)
		assert.True(t, tok.IsRevoked())
	}

	untouched, err := repo.FindByHash(ctx, other.TokenHash)
	require.NoError(t, err)
	assert.False(t, untouched.IsRevoked())
}

func TestRevokeAllForUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	mine, err := repo.Create(ctx, newToken("u1", "fam-1", time.Hour))
	require.NoError(t, err)
	theirs, err := repo.Create(ctx, newToken("u2", "fam-2", time.Hour))
	require.NoError(t, err)

	require.NoError(t, repo.RevokeAllForUser(ctx, "u1"))

	revoked, err := repo.FindByHash(ctx, mine.TokenHash)
	require.NoError(t, err)
	assert.True(t, revoked.IsRevoked())

	untouched, err := repo.FindByHash(ctx, theirs.TokenHash)
	require.NoError(t, err)
	assert.False(t, untouched.IsRevoked())
}

func TestPurgeExpired(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newToken("u1", "fam-1", -time.Minute))
	require.NoError(t, err)
	live, err := repo.Create(ctx, newToken("u1", "fam-1", time.Hour))
	require.NoError(t, err)

	purged, err := repo.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = repo.FindByHash(ctx, live.TokenHash)
	require.NoError(t, err)
}
