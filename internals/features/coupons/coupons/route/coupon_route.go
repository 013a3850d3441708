package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/coupons/coupons/controller"
	"learnsmate_backend/internals/features/coupons/coupons/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

func CouponRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCouponController(service.NewCouponService(db))
	adminOnly := authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("admin coupons"), constants.AdminOnly)
	tutorOnly := authMiddleware.OnlyRoles(constants.RoleErrorTutor("tutor coupons"), constants.RoleTutor)
	manage := authMiddleware.OnlyRolesSlice(constants.RoleErrorTutor("coupon management"), constants.TutorAndAdmin)

	coupon := app.Group("/coupon")
	coupon.Get("/categories", ctrl.ListCategories)
	coupon.Post("/categories", adminOnly, ctrl.RegisterCategory)
	coupon.Post("/admin/register", adminOnly, ctrl.RegisterAdminCoupon)
	coupon.Post("/tutor/register", tutorOnly, ctrl.RegisterTutorCoupon)
	coupon.Get("/coupons", manage, ctrl.List)
	coupon.Post("/filter", manage, ctrl.Filter)
	coupon.Get("/:coupon_code", ctrl.Get)
	coupon.Patch("/:coupon_code", manage, ctrl.Edit)
	coupon.Patch("/:coupon_code/toggle", manage, ctrl.Toggle)
	coupon.Delete("/:coupon_code", manage, ctrl.Deactivate)
}
