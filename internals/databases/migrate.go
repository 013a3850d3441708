package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	couponModel "learnsmate_backend/internals/features/coupons/coupons/model"
	issueCouponModel "learnsmate_backend/internals/features/coupons/issue_coupons/model"
	lectureByStudentModel "learnsmate_backend/internals/features/lectures/lecture_by_students/model"
	lectureCategoryModel "learnsmate_backend/internals/features/lectures/lecture_categories/model"
	lectureModel "learnsmate_backend/internals/features/lectures/lectures/model"
	videoModel "learnsmate_backend/internals/features/lectures/video_by_lectures/model"
	paymentModel "learnsmate_backend/internals/features/payments/model"
	adminModel "learnsmate_backend/internals/features/users/admins/model"
	authModel "learnsmate_backend/internals/features/users/auth/model"
	blacklistModel "learnsmate_backend/internals/features/users/blacklists/model"
	memberModel "learnsmate_backend/internals/features/users/members/model"
	vocModel "learnsmate_backend/internals/features/vocs/model"
	"learnsmate_backend/internals/logger"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&memberModel.MemberModel{},
		&adminModel.AdminModel{},
		&authModel.RevokedTokenModel{},
		&blacklistModel.BlacklistModel{},
		&couponModel.CouponCategoryModel{},
		&couponModel.CouponModel{},
		&issueCouponModel.IssueCouponModel{},
		&lectureModel.LectureModel{},
		&lectureCategoryModel.LectureCategoryModel{},
		&lectureCategoryModel.LectureCategoryByLectureModel{},
		&videoModel.VideoByLectureModel{},
		&lectureByStudentModel.LectureByStudentModel{},
		&vocModel.VocCategoryModel{},
		&vocModel.VocModel{},
		&vocModel.VocAnswerModel{},
		&paymentModel.PaymentModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	logger.Log.Info("schema migrated")
	return nil
}
