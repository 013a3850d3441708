package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/coupons/issue_coupons/controller"
	"learnsmate_backend/internals/features/coupons/issue_coupons/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func IssueCouponRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewIssueCouponController(service.NewIssueCouponService(db))
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("coupon issuance"), constants.AdminOnly)
	studentOrAdmin := authMiddleware.OnlyRoles(constants.RoleErrorStudent("issued coupons"), constants.RoleStudent, constants.RoleAdmin)

	issue := app.Group("/issue-coupon")
	issue.Post("/register", adminOnly, ctrl.Issue)
	issue.Get("/all", adminOnly, ctrl.List)
	issue.Get("/student/:student_code", studentOrAdmin, ctrl.ListByStudent)
	issue.Post("/use", studentOrAdmin, ctrl.Use)
}
