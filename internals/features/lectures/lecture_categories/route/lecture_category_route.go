package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/lectures/lecture_categories/controller"
	"learnsmate_backend/internals/features/lectures/lecture_categories/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func LectureCategoryRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLectureCategoryController(service.NewLectureCategoryService(db))
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("lecture categories"), constants.AdminOnly)
	manage := authMiddleware.OnlyRolesSlice(constants.RoleErrorTutor("lecture categories"), constants.TutorAndAdmin)

	category := app.Group("/lecture-category")
	category.Get("/", ctrl.List)
	category.Post("/", adminOnly, ctrl.Register)
	category.Get("/lecture/:lecture_code", ctrl.ListByLecture)
	category.Post("/lecture/:lecture_code", manage, ctrl.Attach)
	category.Delete("/lecture/:lecture_code/:lecture_category_code", manage, ctrl.Detach)
}
