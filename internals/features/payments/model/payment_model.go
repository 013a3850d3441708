package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusPending  = "PENDING"
	StatusPaid     = "PAID"
	StatusExpired  = "EXPIRED"
	StatusCanceled = "CANCELED"
)

type PaymentModel struct {
	PaymentCode        string         `gorm:"column:payment_code;primaryKey;type:varchar(36)" json:"payment_code"`
	PaymentPrice       int            `gorm:"column:payment_price;not null" json:"payment_price"`
	PaymentStatus      string         `gorm:"column:payment_status;type:varchar(20);not null;index" json:"payment_status"`
	PaymentToken       string         `gorm:"column:payment_token;type:varchar(255)" json:"payment_token"`
	PaidAt             *time.Time     `gorm:"column:paid_at" json:"paid_at,omitempty"`
	LectureCode        int64          `gorm:"column:lecture_code;not null;index" json:"lecture_code"`
	StudentCode        int64          `gorm:"column:student_code;not null;index" json:"student_code"`
	CouponIssuanceCode *string        `gorm:"column:coupon_issuance_code;type:varchar(36)" json:"coupon_issuance_code,omitempty"`
	RawNotification    datatypes.JSON `gorm:"column:raw_notification" json:"-"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PaymentModel) TableName() string {
	return "payment"
}
