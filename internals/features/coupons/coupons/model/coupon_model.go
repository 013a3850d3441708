package model

import (
	"time"

	"gorm.io/datatypes"
)

type CouponCategoryModel struct {
	CouponCategoryCode int64     `gorm:"column:coupon_category_code;primaryKey;autoIncrement" json:"coupon_category_code"`
	CouponCategoryName string    `gorm:"column:coupon_category_name;type:varchar(100);not null;uniqueIndex" json:"coupon_category_name"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CouponCategoryModel) TableName() string {
	return "coupon_category"
}

type CouponModel struct {
	CouponCode         int64     `gorm:"column:coupon_code;primaryKey;autoIncrement" json:"coupon_code"`
	CouponName         string    `gorm:"column:coupon_name;type:varchar(100);not null" json:"coupon_name"`
	CouponContents     string    `gorm:"column:coupon_contents;type:text" json:"coupon_contents"`
	CouponDiscountRate int       `gorm:"column:coupon_discount_rate;not null" json:"coupon_discount_rate"`
	CouponStartDate    time.Time `gorm:"column:coupon_start_date;not null" json:"coupon_start_date"`
	CouponExpireDate   time.Time `gorm:"column:coupon_expire_date;not null" json:"coupon_expire_date"`
	CouponFlag         bool      `gorm:"column:coupon_flag;not null" json:"coupon_flag"`
	ActiveState        bool      `gorm:"column:active_state;not null" json:"active_state"`
	CouponCategoryCode int64     `gorm:"column:coupon_category_code;not null;index" json:"coupon_category_code"`
	AdminCode          *int64    `gorm:"column:admin_code;index" json:"admin_code,omitempty"`
	TutorCode          *int64    `gorm:"column:tutor_code;index" json:"tutor_code,omitempty"`

	// lecture codes the coupon is restricted to; empty means any lecture
	TargetLectureCodes datatypes.JSON `gorm:"column:target_lecture_codes" json:"target_lecture_codes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CouponModel) TableName() string {
	return "coupon"
}

// IsActive reports whether the coupon can be redeemed at now.
func (m *CouponModel) IsActive(now time.Time) bool {
	return m.CouponFlag && m.ActiveState &&
		!now.Before(m.CouponStartDate) && !now.After(m.CouponExpireDate)
}
