package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"capacitajun_backend/internals/features/users/auth/dto"
	authRepo "capacitajun_backend/internals/features/users/auth/repository"
	helper "capacitajun_backend/internals/helpers"
)

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var input dto.ChangePasswordRequest
	if ok, err := helper.ParseAndValidate(c, &input); !ok {
		return err
	}

	user, err := authRepo.FindUserByID(c.UserContext(), db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autorizado")
		}
		return helper.FromFiberError(c, err)
	}

	if err := CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Senha atual incorreta")
	}
	if input.CurrentPassword == input.NewPassword {
		return helper.JsonError(c, fiber.StatusBadRequest, "A nova senha deve ser diferente da atual")
	}

	newHash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := authRepo.UpdateUserPassword(c.UserContext(), db, userID, newHash); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonUpdated(c, "Senha alterada com sucesso", nil)
}
