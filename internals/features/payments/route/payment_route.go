package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnsmate_backend/internals/constants"
	"learnsmate_backend/internals/features/payments/controller"
	"learnsmate_backend/internals/features/payments/service"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

// PaymentRoutes mounts /payment. The notification webhook is public.
func PaymentRoutes(app fiber.Router, db *gorm.DB, gateway service.Gateway, serverKey string) {
	ctrl := controller.NewPaymentController(service.NewPaymentService(db, gateway, serverKey))
	studentOnly := authMiddleware.OnlyRoles(constants.RoleErrorStudent("payment"), constants.RoleStudent)
	studentOrAdmin := authMiddleware.OnlyRoles(constants.RoleErrorStudent("payment"), constants.RoleStudent, constants.RoleAdmin)

	pay := app.Group("/payment")
	pay.Post("/notification", ctrl.Notification)
	pay.Post("/", studentOnly, ctrl.Create)
	pay.Get("/student/:student_code", studentOrAdmin, ctrl.ListByStudent)
	pay.Get("/:payment_code", studentOrAdmin, ctrl.Get)
}
