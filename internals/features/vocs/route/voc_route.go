package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/vocs/controller"
	"learnsmate_backend/internals/features/vocs/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

// VocRoutes mounts /voc. list, count-by-category and filter are public.
func VocRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVocController(service.NewVocService(db))
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("voc answers"), constants.AdminOnly)
	memberOnly := authMiddleware.OnlyRoles(constants.RoleErrorStudent("voc"), constants.RoleStudent, constants.RoleTutor)

	voc := app.Group("/voc")
	voc.Get("/list", ctrl.List)
	voc.Get("/count-by-category", ctrl.CountByCategory)
	voc.Post("/filter", ctrl.Filter)

	voc.Get("/categories", ctrl.ListCategories)
	voc.Post("/categories", adminOnly, ctrl.RegisterCategory)
	voc.Post("/register", memberOnly, ctrl.Register)
	voc.Get("/:voc_code", ctrl.Get)
	voc.Post("/:voc_code/answer", adminOnly, ctrl.Answer)
	voc.Patch("/:voc_code/satisfaction", memberOnly, ctrl.Rate)
}
