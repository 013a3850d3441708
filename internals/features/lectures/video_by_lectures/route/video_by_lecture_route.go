package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/controller"
	"learnsmate_backend/internals/features/lectures/video_by_lectures/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func VideoByLectureRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVideoByLectureController(service.NewVideoByLectureService(db))
	manage := authMiddleware.OnlyRolesSlice(constants.RoleErrorTutor("lecture videos"), constants.TutorAndAdmin)

	video := app.Group("/video-by-lecture")
	video.Delete("/video/:video_code", manage, ctrl.Delete)
	video.Get("/:lecture_code/count", ctrl.Count)
	video.Get("/:lecture_code", ctrl.ListByLecture)
	video.Post("/:lecture_code", manage, ctrl.Register)
}
