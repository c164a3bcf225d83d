package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"capacitajun_backend/internals/constants"
	"capacitajun_backend/internals/features/learning/quizzes/session"
	generatorService "capacitajun_backend/internals/features/tools/generators/service"
	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/helpers/metrics"
	"capacitajun_backend/internals/helpers/pubsub"
	"capacitajun_backend/internals/helpers/storage"
	authMiddleware "capacitajun_backend/internals/middlewares/auth"
	routeDetails "capacitajun_backend/internals/route/details"
)

var startTime time.Time

// Deps are the shared infrastructure handles built in main.
type Deps struct {
	Attempts *session.Store
	Broker   pubsub.Broker
	Storage  storage.Storage
	AI       generatorService.Gateway
	Metrics  *metrics.Metrics
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	startTime = time.Now()

	BaseRoutes(app, db, deps.Metrics)

	api := app.Group("/api")

	// ===================== AUTH =====================
	logger.Log.Info("mounting /api/auth")
	routeDetails.AuthRoutes(api, db)

	// ===================== PUBLIC (no token) =====================
	logger.Log.Info("mounting /api/public")
	public := api.Group("/public")
	routeDetails.ToolsPublicRoutes(public, db, deps.Storage)

	// ===================== USER =====================
	logger.Log.Info("mounting /api/u")
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	routeDetails.UserUserRoutes(user, db)
	routeDetails.LearningUserRoutes(user, db, deps.Attempts)
	routeDetails.ProgressUserRoutes(user, db)
	routeDetails.ToolsUserRoutes(user, db, deps.AI)
	routeDetails.CommunityUserRoutes(user, db, deps.Broker)

	// ===================== ADMIN =====================
	logger.Log.Info("mounting /api/a")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("o painel administrativo"), constants.AdminOnly),
	)
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.LearningAdminRoutes(admin, db)
	routeDetails.ProgressAdminRoutes(admin, db)
	routeDetails.ToolsAdminRoutes(admin, db, deps.Storage)
	routeDetails.CommunityAdminRoutes(admin, db)
}
