package model

import (
	"time"

	couponModel "learnsmate_backend/internals/features/coupons/coupons/model"
)

type IssueCouponModel struct {
	CouponIssuanceCode string     `gorm:"column:coupon_issuance_code;primaryKey;type:varchar(36)" json:"coupon_issuance_code"`
	CouponIssueDate    time.Time  `gorm:"column:coupon_issue_date;not null" json:"coupon_issue_date"`
	CouponUseStatus    bool       `gorm:"column:coupon_use_status;not null;index" json:"coupon_use_status"`
	CouponUseDate      *time.Time `gorm:"column:coupon_use_date" json:"coupon_use_date,omitempty"`
	CouponCode         int64      `gorm:"column:coupon_code;not null;index" json:"coupon_code"`
	StudentCode        int64      `gorm:"column:student_code;not null;index" json:"student_code"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Coupon *couponModel.CouponModel `gorm:"foreignKey:CouponCode;references:CouponCode" json:"-"`
}

func (IssueCouponModel) TableName() string {
	return "issue_coupon"
}
