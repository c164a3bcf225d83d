package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"capacitajun_backend/internals/configs"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

const expirySkew = 30 * time.Second

type Options struct {
	Secret string
	// IsBlacklisted receives helper.HashToken(raw).
	IsBlacklisted func(ctx context.Context, tokenHash string) (bool, error)
	// EnsureActive returns nil for an active user.
	EnsureActive func(ctx context.Context, userID uuid.UUID) error
	Now          func() time.Time
}

// AuthMiddleware guards a group with the database-backed checks.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return AuthJWT(Options{
		Secret:        configs.JWTSecret,
		IsBlacklisted: dbBlacklistChecker(db),
		EnsureActive:  dbActiveChecker(db),
	})
}

func AuthJWT(o Options) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	now := o.Now
	if now == nil {
		now = time.Now
	}

	return func(c *fiber.Ctx) error {
		log := logger.Log.WithField("path", c.Path())

		// 1) Bearer header, then cookie
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autorizado")
		}

		if secret == "" {
			log.Error("JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno. Tente novamente mais tarde.")
		}

		// 2) Blacklist
		if o.IsBlacklisted != nil {
			black, err := o.IsBlacklisted(c.UserContext(), helper.HashToken(tokenString))
			if err != nil {
				log.WithError(err).Error("blacklist lookup failed")
				return helper.JsonError(c, fiber.StatusServiceUnavailable, "Serviço indisponível. Tente novamente mais tarde.")
			}
			if black {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão encerrada. Faça login novamente.")
			}
		}

		// 3) Signature only; exp is checked below with skew
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			log.WithError(err).Debug("token parse failed")
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autorizado")
		}

		// 4) exp
		if err := validateTokenExpiry(claims, expirySkew, now()); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão expirada. Faça login novamente.")
		}

		// 5) user id + active
		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autorizado")
		}
		if o.EnsureActive != nil {
			if err := o.EnsureActive(c.UserContext(), userID); err != nil {
				switch {
				case errors.Is(err, gorm.ErrRecordNotFound):
					return helper.JsonError(c, fiber.StatusUnauthorized, "Não autorizado")
				case errors.Is(err, ErrUserInactive):
					return helper.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada.")
				default:
					log.WithError(err).Error("active check failed")
					return helper.JsonError(c, fiber.StatusServiceUnavailable, "Serviço indisponível. Tente novamente mais tarde.")
				}
			}
		}

		c.Locals(helper.LocUserID, userID.String())
		storeBasicClaimsToLocals(c, claims)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}
