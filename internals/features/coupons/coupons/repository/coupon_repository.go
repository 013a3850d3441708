package repository

import (
	"context"

	"gorm.io/gorm"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/coupons/coupons/dto"
	"learnsmate_backend/internals/features/coupons/coupons/model"
	lectureModel "learnsmate_backend/internals/features/lectures/lectures/model"
	helper "learnsmate_backend/internals/helpers"
)

type CouponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

/* ===== categories ===== */

func (r *CouponRepository) CreateCategory(ctx context.Context, m *model.CouponCategoryModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *CouponRepository) ListCategories(ctx context.Context) ([]model.CouponCategoryModel, error) {
	var rows []model.CouponCategoryModel
	err := database.Conn(ctx, r.db).Order("coupon_category_code ASC").Find(&rows).Error
	return rows, err
}

func (r *CouponRepository) CategoryExists(ctx context.Context, code int64) (bool, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&model.CouponCategoryModel{}).
		Where("coupon_category_code = ?", code).Count(&n).Error
	return n > 0, err
}

// FirstCategory returns the lowest-coded category, used when a tutor omits one.
func (r *CouponRepository) FirstCategory(ctx context.Context) (*model.CouponCategoryModel, error) {
	var m model.CouponCategoryModel
	if err := database.Conn(ctx, r.db).Order("coupon_category_code ASC").Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* ===== coupons ===== */

func (r *CouponRepository) Create(ctx context.Context, m *model.CouponModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

func (r *CouponRepository) FindByCode(ctx context.Context, code int64) (*model.CouponModel, error) {
	var m model.CouponModel
	if err := database.Conn(ctx, r.db).Where("coupon_code = ?", code).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CouponRepository) List(ctx context.Context, p helper.Paging) ([]model.CouponModel, int64, error) {
	return r.page(database.Conn(ctx, r.db).Model(&model.CouponModel{}), p)
}

func (r *CouponRepository) Filter(ctx context.Context, f dto.CouponFilterRequest, p helper.Paging) ([]model.CouponModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.CouponModel{})
	if f.CouponName != nil {
		q = q.Where("LOWER(coupon_name) LIKE ?", "%"+helper.LowerLike(*f.CouponName)+"%")
	}
	if f.CouponCategoryCode != nil {
		q = q.Where("coupon_category_code = ?", *f.CouponCategoryCode)
	}
	if f.ActiveState != nil {
		q = q.Where("active_state = ?", *f.ActiveState)
	}
	if f.CouponFlag != nil {
		q = q.Where("coupon_flag = ?", *f.CouponFlag)
	}
	if f.MinDiscountRate != nil {
		q = q.Where("coupon_discount_rate >= ?", *f.MinDiscountRate)
	}
	if f.MaxDiscountRate != nil {
		q = q.Where("coupon_discount_rate <= ?", *f.MaxDiscountRate)
	}
	if f.StartFrom != nil {
		q = q.Where("coupon_start_date >= ?", *f.StartFrom)
	}
	if f.ExpireUntil != nil {
		q = q.Where("coupon_expire_date <= ?", *f.ExpireUntil)
	}
	if f.TutorCode != nil {
		q = q.Where("tutor_code = ?", *f.TutorCode)
	}
	if f.AdminCode != nil {
		q = q.Where("admin_code = ?", *f.AdminCode)
	}
	return r.page(q, p)
}

func (r *CouponRepository) page(q *gorm.DB, p helper.Paging) ([]model.CouponModel, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.CouponModel
	err := q.Order("coupon_code DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}

func (r *CouponRepository) Updates(ctx context.Context, code int64, fields map[string]any) error {
	return database.Conn(ctx, r.db).Model(&model.CouponModel{}).
		Where("coupon_code = ?", code).Updates(fields).Error
}

// CountTutorLectures counts how many of codes belong to tutorCode.
func (r *CouponRepository) CountTutorLectures(ctx context.Context, tutorCode int64, codes []int64) (int64, error) {
	var n int64
	err := database.Conn(ctx, r.db).Model(&lectureModel.LectureModel{}).
		Where("tutor_code = ? AND lecture_code IN ?", tutorCode, codes).Count(&n).Error
	return n, err
}
