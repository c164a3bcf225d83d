package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	accessCookieName  = "access_token"
	blacklistFallback = 2 * time.Minute
	blacklistMargin   = 60 * time.Second
)

var errEmptySecret = errors.New("jwt secret is empty")

// BuildAccessClaims produces the claim set read back by the auth middleware.
func BuildAccessClaims(userID uuid.UUID, role, userName string, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       userID.String(),
		"id":        userID.String(),
		"role":      role,
		"user_name": userName,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
}

// IssueAccessToken signs an HS256 access token.
func IssueAccessToken(secret string, userID uuid.UUID, role, userName string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", time.Time{}, errEmptySecret
	}
	claims := BuildAccessClaims(userID, role, userName, now, ttl)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, now.Add(ttl).UTC(), nil
}

// ResolveBlacklistTTL keeps a revoked token listed a little past its exp.
// Unparseable tokens fall back to a short fixed window.
func ResolveBlacklistTTL(secret, accessToken string, now time.Time) time.Duration {
	if strings.TrimSpace(secret) == "" || accessToken == "" {
		return blacklistFallback
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return blacklistFallback
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return blacklistFallback
	}
	until := time.Unix(int64(exp), 0).Sub(now)
	if until <= 0 {
		return time.Minute
	}
	return until + blacklistMargin
}

func setAuthCookie(c *fiber.Ctx, accessToken string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     accessCookieName,
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  expires,
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     accessCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
}
