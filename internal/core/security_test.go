// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	valid, err := VerifyPassword("s3cret-passphrase", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("wrong-passphrase", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("anything", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$BBBB")
	assert.Error(t, err)
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	require.NoError(t, err)

	valid, err := VerifyPasswordTimingSafe("s3cret-passphrase", &hash)
	require.NoError(t, err)
	assert.True(t, valid)

	// a missing account always verifies false, without error
	valid, err = VerifyPasswordTimingSafe("s3cret-passphrase", nil)
	require.NoError(t, err)
	assert.False(t, valid)

	empty := ""
	valid, err = VerifyPasswordTimingSafe("s3cret-passphrase", &empty)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestRefreshTokenHashing(t *testing.T) {
	token, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	other, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	hash := HashToken(token)
	assert.Len(t, hash, 64)
	assert.True(t, CompareTokenHash(token, hash))
	assert.False(t, CompareTokenHash(other, hash))
}
