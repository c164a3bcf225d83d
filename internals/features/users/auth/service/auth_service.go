package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/configs"
	progressService "capacitajun_backend/internals/features/progress/progress/service"
	"capacitajun_backend/internals/features/users/auth/dto"
	authModel "capacitajun_backend/internals/features/users/auth/model"
	authRepo "capacitajun_backend/internals/features/users/auth/repository"
	profileDTO "capacitajun_backend/internals/features/users/profiles/dto"
	profileService "capacitajun_backend/internals/features/users/profiles/service"
	helper "capacitajun_backend/internals/helpers"
	"capacitajun_backend/internals/helpers/logger"
)

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func accessTTL() time.Duration {
	if configs.Config != nil && configs.Config.JWT.AccessTTL > 0 {
		return configs.Config.JWT.AccessTTL
	}
	return accessTTLDefault
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.RegisterRequest
	if ok, err := helper.ParseAndValidate(c, &input); !ok {
		return err
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user := authModel.UserModel{Email: input.Email, Password: passwordHash}
	err = db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		if err := profileService.CreateInitialProfile(tx, user.ID, input.FullName, input.Department, input.JobTitle); err != nil {
			return err
		}
		return progressService.CreateInitialUserProgress(tx, user.ID)
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		return helper.FromFiberError(c, err)
	}

	logger.WithUserID(user.ID.String()).Info("user registered")
	return helper.JsonCreated(c, "Cadastro realizado com sucesso", fiber.Map{"id": user.ID, "email": user.Email})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if ok, err := helper.ParseAndValidate(c, &input); !ok {
		return err
	}

	row, err := authRepo.FindLoginRowByEmail(c.UserContext(), db, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "E-mail ou senha incorretos")
		}
		return helper.FromFiberError(c, err)
	}
	if err := CheckPasswordHash(row.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "E-mail ou senha incorretos")
	}
	if !row.ProfileIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Sua conta foi desativada. Fale com um administrador.")
	}

	now := nowUTC()
	token, expiresAt, err := IssueAccessToken(configs.JWTSecret, row.ID, row.ProfileRole, row.ProfileFullName, now, accessTTL())
	if err != nil {
		logger.Log.WithError(err).Error("issue access token")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno. Tente novamente mais tarde.")
	}
	setAuthCookie(c, token, expiresAt)

	profile, err := profileService.GetProfile(c.UserContext(), db, row.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login realizado", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        profileDTO.ToProfileResponse(profile),
	})
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	profile, err := profileService.GetProfile(c.UserContext(), db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Não autorizado")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", profileDTO.ToProfileResponse(profile))
}

/* ==========================
   LOGOUT
========================== */

// Logout is idempotent: it always clears the cookie, and blacklists the
// presented token when there is one.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := helper.GetRawAccessToken(c)

	if accessToken != "" {
		ttl := ResolveBlacklistTTL(configs.JWTSecret, accessToken, nowUTC())
		if err := authRepo.BlacklistToken(c.UserContext(), db, helper.HashToken(accessToken), ttl); err != nil {
			logger.Log.WithError(err).Warn("failed to blacklist token")
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Serviço indisponível. Tente novamente mais tarde.")
		}
	}

	clearAuthCookie(c)
	return helper.JsonOK(c, "Logout realizado", nil)
}
