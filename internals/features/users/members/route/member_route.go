package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/users/members/controller"
	"learnsmate_backend/internals/features/users/members/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

// MemberRoutes mounts /member. Public signup lives under /users (see auth routes).
func MemberRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(service.NewMemberService(db))
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("member management"), constants.AdminOnly)

	member := app.Group("/member")
	member.Post("/register", adminOnly, ctrl.Register)
	member.Get("/students", adminOnly, ctrl.ListStudents)
	member.Get("/tutors", adminOnly, ctrl.ListTutors)
	member.Get("/:member_code", ctrl.GetMember)
	member.Patch("/:member_code", ctrl.Edit)
	member.Delete("/:member_code", adminOnly, ctrl.Deactivate)
}

// MemberSignupRoute mounts the public member signup endpoint.
func MemberSignupRoute(users fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(service.NewMemberService(db))
	users.Post("/members/signup", ctrl.Register)
}
