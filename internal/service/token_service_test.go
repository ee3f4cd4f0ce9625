package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndParse(t *testing.T) {
	tokens := NewTokenService("secret")

	token, err := tokens.IssueToken("user@example.com", time.Hour)
	require.NoError(t, err)

	email, err := tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestTokenService_TokensAreUnique(t *testing.T) {
	tokens := NewTokenService("secret")

	first, err := tokens.IssueToken("user@example.com", 0)
	require.NoError(t, err)
	second, err := tokens.IssueToken("user@example.com", 0)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_NoExpiry(t *testing.T) {
	tokens := NewTokenService("secret")
	token, err := tokens.IssueToken("user@example.com", 0)
	require.NoError(t, err)

	tokens.now = func() time.Time { return time.Now().AddDate(10, 0, 0) }

	email, err := tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("secret")
	token, err := tokens.IssueToken("user@example.com", time.Minute)
	require.NoError(t, err)

	tokens.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = tokens.ParseToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-token" },
		},
		{
			name: "other secret",
			token: func(t *testing.T) string {
				token, err := NewTokenService("other").IssueToken("user@example.com", 0)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "tampered",
			token: func(t *testing.T) string {
				token, err := NewTokenService("secret").IssueToken("user@example.com", 0)
				require.NoError(t, err)
				parts := strings.Split(token, ".")
				parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"email":"evil@example.com"}`))
				return strings.Join(parts, ".")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenService("secret").ParseToken(tt.token(t))
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
