package exceptions

import "github.com/gofiber/fiber/v2"

// StatusEnum pairs an HTTP status with a stable error code and message.
type StatusEnum struct {
	Code    int
	Status  string
	Message string
}

var (
	InvalidParameter        = StatusEnum{fiber.StatusBadRequest, "INVALID_PARAMETER", "invalid parameter"}
	InvalidCredentials      = StatusEnum{fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password"}
	Unauthorized            = StatusEnum{fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required"}
	InactiveAccount         = StatusEnum{fiber.StatusForbidden, "INACTIVE_ACCOUNT", "account is deactivated"}
	Forbidden               = StatusEnum{fiber.StatusForbidden, "FORBIDDEN", "access denied"}
	InvalidVerificationCode = StatusEnum{fiber.StatusBadRequest, "INVALID_VERIFICATION_CODE", "verification code is invalid or expired"}
	PhoneNotVerified        = StatusEnum{fiber.StatusForbidden, "PHONE_NOT_VERIFIED", "phone number has not been verified"}

	UserNotFound      = StatusEnum{fiber.StatusNotFound, "USER_NOT_FOUND", "user not found"}
	StudentNotFound   = StatusEnum{fiber.StatusNotFound, "STUDENT_NOT_FOUND", "student not found"}
	TutorNotFound     = StatusEnum{fiber.StatusNotFound, "TUTOR_NOT_FOUND", "tutor not found"}
	AdminNotFound     = StatusEnum{fiber.StatusNotFound, "ADMIN_NOT_FOUND", "admin not found"}
	CouponNotFound    = StatusEnum{fiber.StatusNotFound, "COUPON_NOT_FOUND", "coupon not found"}
	CategoryNotFound  = StatusEnum{fiber.StatusNotFound, "CATEGORY_NOT_FOUND", "category not found"}
	LectureNotFound   = StatusEnum{fiber.StatusNotFound, "LECTURE_NOT_FOUND", "lecture not found"}
	VideoNotFound     = StatusEnum{fiber.StatusNotFound, "VIDEO_NOT_FOUND", "video not found"}
	VocNotFound       = StatusEnum{fiber.StatusNotFound, "VOC_NOT_FOUND", "voc not found"}
	BlacklistNotFound = StatusEnum{fiber.StatusNotFound, "BLACKLIST_NOT_FOUND", "blacklist not found"}
	PaymentNotFound   = StatusEnum{fiber.StatusNotFound, "PAYMENT_NOT_FOUND", "payment not found"}

	DuplicateEmail        = StatusEnum{fiber.StatusConflict, "DUPLICATE_EMAIL", "email is already registered"}
	AlreadyBlacklisted    = StatusEnum{fiber.StatusConflict, "ALREADY_BLACKLISTED", "member is already blacklisted"}
	VocAlreadyAnswered    = StatusEnum{fiber.StatusConflict, "VOC_ALREADY_ANSWERED", "voc is already answered"}
	AlreadyOwned          = StatusEnum{fiber.StatusConflict, "ALREADY_OWNED", "student already owns this lecture"}
	LectureNotOnSale      = StatusEnum{fiber.StatusConflict, "LECTURE_NOT_ON_SALE", "lecture is not available for purchase"}
	CouponNotApplicable   = StatusEnum{fiber.StatusConflict, "COUPON_NOT_APPLICABLE", "coupon cannot be applied to this lecture"}
	DuplicateCategory     = StatusEnum{fiber.StatusConflict, "DUPLICATE_CATEGORY", "category already exists"}
	PaymentAlreadySettled = StatusEnum{fiber.StatusConflict, "PAYMENT_ALREADY_SETTLED", "payment is already settled"}

	ExternalServiceFailure = StatusEnum{fiber.StatusBadGateway, "EXTERNAL_SERVICE_FAILURE", "external service failed"}
	InternalError          = StatusEnum{fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"}
)
