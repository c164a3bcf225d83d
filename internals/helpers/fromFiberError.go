package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"capacitajun_backend/internals/helpers/logger"
)

// FromFiberError writes err as the standard error envelope. *fiber.Error keeps
// its code and message; anything else is logged and answered with a generic 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "Registro não encontrado")
	}
	if IsUniqueViolation(err) {
		return JsonError(c, fiber.StatusConflict, "Registro já existe")
	}
	logger.Log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, "Erro interno. Tente novamente mais tarde.")
}

// IsUniqueViolation reports a Postgres 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports a Postgres 23503.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
