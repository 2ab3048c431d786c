package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret", 7*24*time.Hour)

	claims := Claims{
		ID:    42,
		Email: "tech@oficina.com.br",
		Role:  "technician",
		Name:  "João",
	}

	raw, err := svc.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, claims, *got)
}

func TestVerifyExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	svc := NewService("test-secret", 7*24*time.Hour).WithClock(clock)

	raw, err := svc.Issue(Claims{ID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	// Ainda dentro da validade.
	now = now.Add(7*24*time.Hour - time.Minute)
	_, err = svc.Verify(raw)
	require.NoError(t, err)

	// Passou da validade.
	now = now.Add(2 * time.Minute)
	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, raw := range []string{
		"",
		"not-a-token",
		"aaa.bbb.ccc",
	} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", raw)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	raw, err := issuer.Issue(Claims{ID: 1})
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrMalformed)
}
