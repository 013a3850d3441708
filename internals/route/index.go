package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	couponRoute "learnsmate_backend/internals/features/coupons/coupons/route"
	issueCouponRoute "learnsmate_backend/internals/features/coupons/issue_coupons/route"
	lectureByStudentRoute "learnsmate_backend/internals/features/lectures/lecture_by_students/route"
	lectureCategoryRoute "learnsmate_backend/internals/features/lectures/lecture_categories/route"
	lectureRoute "learnsmate_backend/internals/features/lectures/lectures/route"
	videoRoute "learnsmate_backend/internals/features/lectures/video_by_lectures/route"
	paymentRoute "learnsmate_backend/internals/features/payments/route"
	paymentService "learnsmate_backend/internals/features/payments/service"
	adminRoute "learnsmate_backend/internals/features/users/admins/route"
	authRoute "learnsmate_backend/internals/features/users/auth/route"
	authService "learnsmate_backend/internals/features/users/auth/service"
	blacklistRoute "learnsmate_backend/internals/features/users/blacklists/route"
	memberRoute "learnsmate_backend/internals/features/users/members/route"
	verificationService "learnsmate_backend/internals/features/users/verification/service"
	vocRoute "learnsmate_backend/internals/features/vocs/route"
	helperOSS "learnsmate_backend/internals/helpers/oss"
	"learnsmate_backend/internals/logger"
	authMiddleware "learnsmate_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps carries the external clients built in main.
type Deps struct {
	Verification      *verificationService.VerificationService
	Google            authService.GoogleVerifier
	Storage           helperOSS.Storage
	Gateway           paymentService.Gateway
	MidtransServerKey string
	Metrics           prometheus.Gatherer
}

// SetupRoutes mounts every feature behind the token filter. The returned
// auth service drives the revoked-token cleanup.
func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) *authService.AuthService {
	startTime = time.Now()

	app.Use(authMiddleware.AuthMiddleware(db))
	BaseRoutes(app, db, deps.Metrics)

	logger.Log.Info("mounting user routes")
	auth := authRoute.UserRoutes(app, db, deps.Verification, deps.Google)
	adminRoute.AdminRoutes(app, db)
	memberRoute.MemberRoutes(app, db)
	blacklistRoute.BlacklistRoutes(app, db)

	logger.Log.Info("mounting coupon routes")
	couponRoute.CouponRoutes(app, db)
	issueCouponRoute.IssueCouponRoutes(app, db)

	logger.Log.Info("mounting lecture routes")
	lectureRoute.LectureRoutes(app, db, deps.Storage)
	lectureCategoryRoute.LectureCategoryRoutes(app, db)
	videoRoute.VideoByLectureRoutes(app, db)
	lectureByStudentRoute.LectureByStudentRoutes(app, db)

	logger.Log.Info("mounting voc and payment routes")
	vocRoute.VocRoutes(app, db)
	paymentRoute.PaymentRoutes(app, db, deps.Gateway, deps.MidtransServerKey)

	return auth
}
