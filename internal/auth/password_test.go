package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hashed, err := DefaultHasher("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hashed)
	assert.True(t, VerifyPassword(hashed, "secret"))
	assert.False(t, VerifyPassword(hashed, "Secret"))

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestBcryptHasher_Salted(t *testing.T) {
	a, err := DefaultHasher("secret")
	require.NoError(t, err)
	b, err := DefaultHasher("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_TooLong(t *testing.T) {
	_, err := BcryptHasher(bcrypt.MinCost)(strings.Repeat("x", 73))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash password")
}

func TestVerifyPassword_Garbage(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-hash", "secret"))
}
