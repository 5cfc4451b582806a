package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndGetClaims(t *testing.T) {
	j := New("test_secret", time.Minute, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	access, err := j.GenerateAccessToken(ctx, userID, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)

	claims, err := j.GetClaims(ctx, access)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestGenerateRefreshToken_Type(t *testing.T) {
	j := New("test_secret", time.Minute, time.Hour)
	ctx := context.Background()

	refresh, err := j.GenerateRefreshToken(ctx, uuid.New(), "alice")
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, refresh)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestGetClaims_Errors(t *testing.T) {
	j := New("test_secret", time.Minute, time.Hour)
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		_, err := j.GetClaims(ctx, "not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := New("other_secret", time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(ctx, uuid.New(), "bob")
		assert.NoError(t, err)

		_, err = j.GetClaims(ctx, token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := New("test_secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(ctx, uuid.New(), "bob")
		assert.NoError(t, err)

		_, err = j.GetClaims(ctx, token)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	j := New("test_secret", time.Minute, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	access, err := j.GenerateAccessToken(ctx, userID, "alice")
	assert.NoError(t, err)
	assert.NoError(t, j.Validate(ctx, access))

	refresh, err := j.GenerateRefreshToken(ctx, userID, "alice")
	assert.NoError(t, err)
	assert.ErrorIs(t, j.Validate(ctx, refresh), ErrWrongTokenType)

	assert.Error(t, j.Validate(ctx, "broken"))
}

func TestGetTokenFromRequest(t *testing.T) {
	j := New("test_secret", time.Minute, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid header", header: "Bearer abc123", wantToken: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", wantToken: "abc123"},
		{name: "missing header", header: "", wantErr: ErrNoAuthHeader},
		{name: "wrong scheme", header: "Basic abc123", wantErr: ErrBadAuthHeader},
		{name: "no token part", header: "Bearer", wantErr: ErrBadAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
