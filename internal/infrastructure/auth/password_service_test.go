package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.True(t, svc.Verify(hash, "secret1"))
	assert.False(t, svc.Verify(hash, "wrong"))
	assert.False(t, svc.Verify(hash, ""))
}

func TestPasswordService_SamePasswordHashesDiffer(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("secret1")
	require.NoError(t, err)
	second, err := svc.Hash("secret1")
	require.NoError(t, err)

	// bcrypt salts every hash, so equal inputs must not collide.
	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify(first, "secret1"))
	assert.True(t, svc.Verify(second, "secret1"))
}

func TestPasswordService_VerifyGarbageHash(t *testing.T) {
	svc := NewPasswordService()

	assert.False(t, svc.Verify("not-a-bcrypt-hash", "secret1"))
	assert.False(t, svc.Verify("", "secret1"))
}
