package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "learnsmate_backend/internals/databases"
	"learnsmate_backend/internals/features/coupons/issue_coupons/model"
	helper "learnsmate_backend/internals/helpers"
)

type IssueCouponRepository struct {
	db *gorm.DB
}

func NewIssueCouponRepository(db *gorm.DB) *IssueCouponRepository {
	return &IssueCouponRepository{db: db}
}

func (r *IssueCouponRepository) Create(ctx context.Context, m *model.IssueCouponModel) error {
	return database.Conn(ctx, r.db).Create(m).Error
}

// FindActiveUnusedByStudent lists unused issuances whose coupon is currently redeemable.
func (r *IssueCouponRepository) FindActiveUnusedByStudent(ctx context.Context, studentCode int64, now time.Time) ([]model.IssueCouponModel, error) {
	var rows []model.IssueCouponModel
	err := database.Conn(ctx, r.db).
		Joins("Coupon").
		Where("issue_coupon.student_code = ? AND issue_coupon.coupon_use_status = ?", studentCode, false).
		Where(`"Coupon".coupon_flag = ? AND "Coupon".active_state = ?`, true, true).
		Where(`"Coupon".coupon_start_date <= ? AND "Coupon".coupon_expire_date >= ?`, now, now).
		Order("issue_coupon.coupon_issue_date DESC").
		Find(&rows).Error
	return rows, err
}

// FindUnusedForUpdate locks an unused issuance owned by studentCode.
func (r *IssueCouponRepository) FindUnusedForUpdate(ctx context.Context, issuanceCode string, studentCode int64) (*model.IssueCouponModel, error) {
	var m model.IssueCouponModel
	err := database.Conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("coupon_issuance_code = ? AND student_code = ? AND coupon_use_status = ?", issuanceCode, studentCode, false).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MarkUsed flips an unused issuance to used. It reports false when another
// request got there first.
func (r *IssueCouponRepository) MarkUsed(ctx context.Context, issuanceCode string, at time.Time) (bool, error) {
	res := database.Conn(ctx, r.db).Model(&model.IssueCouponModel{}).
		Where("coupon_issuance_code = ? AND coupon_use_status = ?", issuanceCode, false).
		Updates(map[string]any{"coupon_use_status": true, "coupon_use_date": at})
	return res.RowsAffected == 1, res.Error
}

// MarkUnused reverts a used issuance. It reports false when the issuance was not used.
func (r *IssueCouponRepository) MarkUnused(ctx context.Context, issuanceCode string) (bool, error) {
	res := database.Conn(ctx, r.db).Model(&model.IssueCouponModel{}).
		Where("coupon_issuance_code = ? AND coupon_use_status = ?", issuanceCode, true).
		Updates(map[string]any{"coupon_use_status": false, "coupon_use_date": nil})
	return res.RowsAffected == 1, res.Error
}

func (r *IssueCouponRepository) List(ctx context.Context, p helper.Paging) ([]model.IssueCouponModel, int64, error) {
	q := database.Conn(ctx, r.db).Model(&model.IssueCouponModel{}).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []model.IssueCouponModel
	err := q.Order("coupon_issue_date DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
