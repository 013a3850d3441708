package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/users/admins/controller"
	"learnsmate_backend/internals/features/users/admins/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func AdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(service.NewAdminService(db))

	admin := app.Group("/admin",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("admin management"), constants.AdminOnly),
	)
	admin.Get("/", ctrl.List)
	admin.Get("/me", ctrl.Me)
	admin.Get("/:admin_code", ctrl.Get)
	admin.Patch("/:admin_code", ctrl.Edit)
}

// AdminSignupRoute mounts POST /users/signup.
func AdminSignupRoute(users fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(service.NewAdminService(db))
	users.Post("/signup", ctrl.Signup)
}
