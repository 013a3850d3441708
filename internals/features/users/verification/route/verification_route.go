package route

import (
	"github.com/gofiber/fiber/v2"

	"learnsmate_backend/internals/features/users/verification/controller"
	"learnsmate_backend/internals/features/users/verification/service"
	"learnsmate_backend/internals/middlewares"
)

func VerificationRoutes(users fiber.Router, svc *service.VerificationService) {
	ctrl := controller.NewVerificationController(svc)
	users.Post("/send-sms", middlewares.SmsRateLimiter(), ctrl.SendSms)
	users.Post("/verify-code", middlewares.VerifyRateLimiter(), ctrl.VerifyCode)
}
