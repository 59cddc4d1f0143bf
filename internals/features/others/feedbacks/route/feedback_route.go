package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackController "tokorakit_backend/internals/features/others/feedbacks/controller"
)

func FeedbackUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := feedbackController.NewFeedbackController(db)

	feedbacks := api.Group("/feedbacks")
	feedbacks.Get("/", ctrl.ListMyFeedbacks)
	feedbacks.Post("/", ctrl.CreateFeedback)
}

func FeedbackAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := feedbackController.NewFeedbackController(db)

	api.Get("/feedbacks", ctrl.ListAllFeedbacks)
}
