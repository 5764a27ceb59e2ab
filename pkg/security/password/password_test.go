package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret123")

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("secret124", digest))
	assert.False(t, h.Verify("", digest))
}

func TestHashIsSalted(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	d1, err := h.Hash("secret123")
	require.NoError(t, err)
	d2, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}

func TestHashUTF8(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("пароль-密码-🔑")
	require.NoError(t, err)
	assert.True(t, h.Verify("пароль-密码-🔑", digest))
}

func TestHashTooLongErrorsInsteadOfTruncating(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 100))
	require.Error(t, err)
}

func TestCostFallback(t *testing.T) {
	h := NewBcrypt(1000)

	digest, err := h.Hash("x")
	require.NoError(t, err)
	assert.True(t, h.Verify("x", digest))
}
