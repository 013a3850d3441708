package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "learnsmate_backend/internals/features/users/admins/route"
	"learnsmate_backend/internals/features/users/auth/controller"
	"learnsmate_backend/internals/features/users/auth/service"
	memberRoute "learnsmate_backend/internals/features/users/members/route"
	verificationRoute "learnsmate_backend/internals/features/users/verification/route"
	verificationService "learnsmate_backend/internals/features/users/verification/service"
	"learnsmate_backend/internals/middlewares"
)

// UserRoutes mounts the public /users group: login, logout, signup, SMS
// verification and password reset.
func UserRoutes(app fiber.Router, db *gorm.DB, verification *verificationService.VerificationService, google service.GoogleVerifier) *service.AuthService {
	svc := service.NewAuthService(db, verification, google)
	ctrl := controller.NewAuthController(svc)

	users := app.Group("/users")
	users.Post("/login", middlewares.LoginRateLimiter(), ctrl.AdminLogin)
	users.Post("/members/login", middlewares.LoginRateLimiter(), ctrl.MemberLogin)
	users.Post("/logout", ctrl.Logout)
	users.Get("/oauth2", ctrl.GoogleLogin)
	users.Get("/email/check", ctrl.CheckEmail)
	users.Patch("/mypage/edit/password", ctrl.ResetPassword)

	adminRoute.AdminSignupRoute(users, db)
	memberRoute.MemberSignupRoute(users, db)
	verificationRoute.VerificationRoutes(users, verification)

	return svc
}
