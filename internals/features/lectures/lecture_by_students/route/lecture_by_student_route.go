package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/controller"
	"learnsmate_backend/internals/features/lectures/lecture_by_students/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func LectureByStudentRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLectureByStudentController(service.NewLectureByStudentService(db))
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("lecture ownership"), constants.AdminOnly)
	studentOrAdmin := authMiddleware.OnlyRoles(constants.RoleErrorStudent("owned lectures"), constants.RoleStudent, constants.RoleAdmin)

	owned := app.Group("/lecture-by-student")
	owned.Get("/student/:student_code", studentOrAdmin, ctrl.FindByStudent)
	owned.Post("/", adminOnly, ctrl.Grant)
	owned.Delete("/", adminOnly, ctrl.Revoke)
}
