package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	backgroundRoute "capacitajun_backend/internals/features/admin/backgrounds/route"
	cafeRoute "capacitajun_backend/internals/features/tools/cafe/route"
	generatorRoute "capacitajun_backend/internals/features/tools/generators/route"
	generatorService "capacitajun_backend/internals/features/tools/generators/service"
	kanbanRoute "capacitajun_backend/internals/features/tools/kanban/route"
	noteRoute "capacitajun_backend/internals/features/tools/notes/route"
	sharedLinkRoute "capacitajun_backend/internals/features/tools/shared_links/route"
	"capacitajun_backend/internals/helpers/storage"
)

// 🌐 /api/public/links, /api/public/backgrounds
func ToolsPublicRoutes(public fiber.Router, db *gorm.DB, st storage.Storage) {
	sharedLinkRoute.SharedLinkPublicRoutes(public, db)
	backgroundRoute.BackgroundPublicRoutes(public, db, st)
}

func ToolsUserRoutes(user fiber.Router, db *gorm.DB, gw generatorService.Gateway) {
	kanbanRoute.KanbanUserRoutes(user, db)
	noteRoute.NoteUserRoutes(user, db)
	cafeRoute.CafeUserRoutes(user, db)
	generatorRoute.GeneratorUserRoutes(user, db, gw)
}

func ToolsAdminRoutes(admin fiber.Router, db *gorm.DB, st storage.Storage) {
	sharedLinkRoute.SharedLinkAdminRoutes(admin, db)
	backgroundRoute.BackgroundAdminRoutes(admin, db, st)
}
