package helper

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocRawToken holds the verified raw JWT for handlers that need it (logout).
const LocRawToken = "raw_token"

// GetRawAccessToken returns the access token from, in order:
// Locals("raw_token"), Authorization "Bearer <token>", cookie "access_token".
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if tok, ok := BearerFromHeader(c.Get(fiber.HeaderAuthorization)); ok {
		return tok
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// BearerFromHeader tolerates repeated spaces, any case for "Bearer" and
// surrounding quotes.
func BearerFromHeader(header string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(header))
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", false
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", false
	}
	return tok, true
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// HashToken is the key under which a revoked token is stored.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}
