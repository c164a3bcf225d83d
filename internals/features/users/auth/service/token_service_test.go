package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAccessToken(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token, exp, err := IssueAccessToken("s3cret", userID, "learner", "Ana", now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims := jwt.MapClaims{}
	_, err = (&jwt.Parser{SkipClaimsValidation: true}).ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("s3cret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["id"])
	assert.Equal(t, "learner", claims["role"])
	assert.Equal(t, "Ana", claims["user_name"])
	assert.EqualValues(t, now.Add(time.Hour).Unix(), claims["exp"])
}

func TestIssueAccessToken_EmptySecret(t *testing.T) {
	_, _, err := IssueAccessToken("  ", uuid.New(), "learner", "Ana", time.Now(), time.Hour)
	assert.ErrorIs(t, err, errEmptySecret)
}

func TestResolveBlacklistTTL(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	token, _, err := IssueAccessToken("s3cret", uuid.New(), "learner", "Ana", now, 2*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour+blacklistMargin, ResolveBlacklistTTL("s3cret", token, now))
	assert.Equal(t, blacklistFallback, ResolveBlacklistTTL("wrong", token, now))
	assert.Equal(t, blacklistFallback, ResolveBlacklistTTL("s3cret", "not-a-jwt", now))
	assert.Equal(t, time.Minute, ResolveBlacklistTTL("s3cret", token, now.Add(3*time.Hour)))
}
