package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "capacitajun_backend/internals/features/users/auth/model"
	helper "capacitajun_backend/internals/helpers"
)

// ErrUserInactive is returned by active checkers for deactivated accounts.
var ErrUserInactive = errors.New("user inactive")

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if tok, ok := helper.BearerFromHeader(c.Get(fiber.HeaderAuthorization)); ok {
		return tok, nil
	}
	if strings.TrimSpace(c.Get(fiber.HeaderAuthorization)) != "" {
		return "", fmt.Errorf("invalid token format")
	}
	if tok := strings.Trim(strings.TrimSpace(c.Cookies("access_token")), "\"'"); tok != "" {
		return tok, nil
	}
	return "", fmt.Errorf("no token provided")
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration, now time.Time) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	expTime := time.Unix(expUnix, 0).UTC()
	if now.UTC().After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"id", "sub"} {
		if s, ok := claims[key].(string); ok && strings.TrimSpace(s) != "" {
			return uuid.Parse(strings.TrimSpace(s))
		}
	}
	return uuid.Nil, fmt.Errorf("no user id")
}

/* ======== Store claims to Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals(helper.LocUserRole, role)
	}
	if userName, ok := claims["user_name"].(string); ok {
		c.Locals(helper.LocUserName, userName)
	}
}

/* ======== DB-backed checkers ======== */

func dbBlacklistChecker(db *gorm.DB) func(ctx context.Context, tokenHash string) (bool, error) {
	return func(ctx context.Context, tokenHash string) (bool, error) {
		var n int64
		err := db.WithContext(ctx).
			Model(&authModel.TokenBlacklist{}).
			Where("token = ? AND expired_at > ?", tokenHash, time.Now().UTC()).
			Count(&n).Error
		return n > 0, err
	}
}

// dbActiveChecker returns gorm.ErrRecordNotFound for unknown users and
// ErrUserInactive for deactivated ones.
func dbActiveChecker(db *gorm.DB) func(ctx context.Context, userID uuid.UUID) error {
	return func(ctx context.Context, userID uuid.UUID) error {
		var row struct {
			ProfileIsActive bool
		}
		if err := db.WithContext(ctx).
			Table("profiles").
			Select("profile_is_active").
			Where("profile_id = ?", userID).
			Take(&row).Error; err != nil {
			return err
		}
		if !row.ProfileIsActive {
			return ErrUserInactive
		}
		return nil
	}
}
