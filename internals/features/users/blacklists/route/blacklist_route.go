package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/users/blacklists/controller"
	"learnsmate_backend/internals/features/users/blacklists/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func BlacklistRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBlacklistController(service.NewBlacklistService(db))

	black := app.Group("/blacklist",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("blacklist"), constants.AdminOnly),
	)
	black.Post("/", ctrl.Register)
	black.Get("/students", ctrl.ListStudents)
	black.Get("/tutors", ctrl.ListTutors)
	black.Get("/:member_code", ctrl.Get)
	black.Delete("/:member_code", ctrl.Lift)
}
