package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptRoute "capacitajun_backend/internals/features/learning/attempts/route"
	categoryRoute "capacitajun_backend/internals/features/learning/categories/route"
	completionRoute "capacitajun_backend/internals/features/learning/completions/route"
	lessonRoute "capacitajun_backend/internals/features/learning/lessons/route"
	questionRoute "capacitajun_backend/internals/features/learning/questions/route"
	quizRoute "capacitajun_backend/internals/features/learning/quizzes/route"
	"capacitajun_backend/internals/features/learning/quizzes/session"
)

// 📚 Learner side: catalog, quiz attempts, validation and completions.
func LearningUserRoutes(user fiber.Router, db *gorm.DB, store *session.Store) {
	categoryRoute.CategoryUserRoutes(user, db)
	lessonRoute.LessonUserRoutes(user, db)
	questionRoute.QuestionUserRoutes(user, db)
	quizRoute.QuizUserRoutes(user, db)
	attemptRoute.AttemptUserRoutes(user, db, store)
	completionRoute.CompletionUserRoutes(user, db)
}

// 🛠️ Content management.
func LearningAdminRoutes(admin fiber.Router, db *gorm.DB) {
	categoryRoute.CategoryAdminRoutes(admin, db)
	lessonRoute.LessonAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
}
