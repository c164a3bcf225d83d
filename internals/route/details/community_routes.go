package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	forumRoute "capacitajun_backend/internals/features/community/forums/route"
	groupRoute "capacitajun_backend/internals/features/community/groups/route"
	mentorshipRoute "capacitajun_backend/internals/features/community/mentorship/route"
	"capacitajun_backend/internals/helpers/pubsub"
)

// 💬 forum, study groups (with SSE) and mentorship
func CommunityUserRoutes(user fiber.Router, db *gorm.DB, broker pubsub.Broker) {
	forumRoute.ForumUserRoutes(user, db)
	groupRoute.GroupUserRoutes(user, db, broker)
	mentorshipRoute.MentorshipUserRoutes(user, db)
}

func CommunityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	forumRoute.ForumAdminRoutes(admin, db)
}
