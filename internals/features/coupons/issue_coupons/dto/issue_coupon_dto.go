package dto

import (
	"time"

	couponDto "learnsmate_backend/internals/features/coupons/coupons/dto"
	"learnsmate_backend/internals/features/coupons/issue_coupons/model"
)

type IssueCouponRegisterRequest struct {
	StudentCodes []int64 `json:"student_codes" validate:"required,min=1,max=500,dive,gt=0"`
	CouponCodes  []int64 `json:"coupon_codes" validate:"required,min=1,max=50,dive,gt=0"`
}

type UseIssuedCouponRequest struct {
	StudentCode        int64  `json:"student_code" validate:"omitempty,gt=0"`
	CouponIssuanceCode string `json:"coupon_issuance_code" validate:"required,max=64"`
}

type IssueCouponResponse struct {
	CouponIssuanceCode string                    `json:"coupon_issuance_code"`
	CouponIssueDate    time.Time                 `json:"coupon_issue_date"`
	CouponUseStatus    bool                      `json:"coupon_use_status"`
	CouponUseDate      *time.Time                `json:"coupon_use_date,omitempty"`
	CouponCode         int64                     `json:"coupon_code"`
	StudentCode        int64                     `json:"student_code"`
	Coupon             *couponDto.CouponResponse `json:"coupon,omitempty"`
}

func ToIssueCouponResponse(m *model.IssueCouponModel, now time.Time) IssueCouponResponse {
	resp := IssueCouponResponse{
		CouponIssuanceCode: m.CouponIssuanceCode,
		CouponIssueDate:    m.CouponIssueDate,
		CouponUseStatus:    m.CouponUseStatus,
		CouponUseDate:      m.CouponUseDate,
		CouponCode:         m.CouponCode,
		StudentCode:        m.StudentCode,
	}
	if m.Coupon != nil {
		c := couponDto.ToCouponResponse(m.Coupon, now)
		resp.Coupon = &c
	}
	return resp
}

func ToIssueCouponResponses(rows []model.IssueCouponModel, now time.Time) []IssueCouponResponse {
	out := make([]IssueCouponResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToIssueCouponResponse(&rows[i], now))
	}
	return out
}
