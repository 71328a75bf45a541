package auth_test

import (
	"testing"
	"time"

	"backoffice/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret")

	token, exp, err := issuer.Issue(42, auth.GuardAdmin)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	id, err := issuer.Parse(token, auth.GuardAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestTokenIssuer_GuardMismatch(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret")

	token, _, err := issuer.Issue(42, auth.GuardCustomer)
	require.NoError(t, err)

	_, err = issuer.Parse(token, auth.GuardAdmin)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, _, err := auth.NewTokenIssuer("secret-a").Issue(42, auth.GuardAdmin)
	require.NoError(t, err)

	_, err = auth.NewTokenIssuer("secret-b").Parse(token, auth.GuardAdmin)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	_, err := auth.NewTokenIssuer("test-secret").Parse("not-a-token", auth.GuardAdmin)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	h := auth.NewBcryptHasher()

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, h.Compare(hash, "password123"))
	assert.Error(t, h.Compare(hash, "wrong"))
}
