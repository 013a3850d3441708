package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/lectures/lectures/controller"
	"learnsmate_backend/internals/features/lectures/lectures/service"
	helperOSS "learnsmate_backend/internals/helpers/oss"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func LectureRoutes(app fiber.Router, db *gorm.DB, storage helperOSS.Storage) {
	ctrl := controller.NewLectureController(service.NewLectureService(db, storage))
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("lecture review"), constants.AdminOnly)
	manage := authMiddleware.OnlyRolesSlice(constants.RoleErrorTutor("lecture management"), constants.TutorAndAdmin)

	lecture := app.Group("/lecture")
	lecture.Post("/register", manage, ctrl.Register)
	lecture.Get("/list", ctrl.List)
	lecture.Get("/tutor/:tutor_code", ctrl.ListByTutor)
	lecture.Get("/:lecture_code", ctrl.Get)
	lecture.Patch("/:lecture_code", manage, ctrl.Edit)
	lecture.Delete("/:lecture_code", manage, ctrl.Deactivate)
	lecture.Patch("/:lecture_code/confirm", adminOnly, ctrl.Confirm)
	lecture.Post("/:lecture_code/thumbnail", manage, ctrl.UploadThumbnail)
}
