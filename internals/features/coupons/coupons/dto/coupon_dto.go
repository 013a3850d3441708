package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"learnsmate_backend/internals/features/coupons/coupons/model"
)

type CouponCategoryRequest struct {
	CouponCategoryName string `json:"coupon_category_name" validate:"required,max=100"`
}

func (r *CouponCategoryRequest) Normalize() {
	r.CouponCategoryName = strings.TrimSpace(r.CouponCategoryName)
}

type AdminCouponRegisterRequest struct {
	CouponName         string    `json:"coupon_name" validate:"required,max=100"`
	CouponContents     string    `json:"coupon_contents" validate:"omitempty,max=2000"`
	CouponDiscountRate int       `json:"coupon_discount_rate" validate:"required,min=1,max=100"`
	CouponStartDate    time.Time `json:"coupon_start_date" validate:"required"`
	CouponExpireDate   time.Time `json:"coupon_expire_date" validate:"required,gtfield=CouponStartDate"`
	CouponCategoryCode int64     `json:"coupon_category_code" validate:"required,gt=0"`
	TargetLectureCodes []int64   `json:"target_lecture_codes" validate:"omitempty,dive,gt=0"`
}

func (r *AdminCouponRegisterRequest) Normalize() {
	r.CouponName = strings.TrimSpace(r.CouponName)
	r.CouponContents = strings.TrimSpace(r.CouponContents)
}

func (r *AdminCouponRegisterRequest) ToModel(adminCode int64) *model.CouponModel {
	return &model.CouponModel{
		CouponName:         r.CouponName,
		CouponContents:     r.CouponContents,
		CouponDiscountRate: r.CouponDiscountRate,
		CouponStartDate:    r.CouponStartDate,
		CouponExpireDate:   r.CouponExpireDate,
		CouponFlag:         true,
		ActiveState:        true,
		CouponCategoryCode: r.CouponCategoryCode,
		AdminCode:          &adminCode,
		TargetLectureCodes: EncodeLectureCodes(r.TargetLectureCodes),
	}
}

// TutorCouponRegisterRequest starts the coupon immediately.
type TutorCouponRegisterRequest struct {
	CouponName         string    `json:"coupon_name" validate:"required,max=100"`
	CouponContents     string    `json:"coupon_contents" validate:"omitempty,max=2000"`
	CouponDiscountRate int       `json:"coupon_discount_rate" validate:"required,min=1,max=100"`
	CouponExpireDate   time.Time `json:"coupon_expire_date" validate:"required"`
	CouponCategoryCode *int64    `json:"coupon_category_code" validate:"omitempty,gt=0"`
	TargetLectureCodes []int64   `json:"target_lecture_codes" validate:"omitempty,dive,gt=0"`
}

func (r *TutorCouponRegisterRequest) Normalize() {
	r.CouponName = strings.TrimSpace(r.CouponName)
	r.CouponContents = strings.TrimSpace(r.CouponContents)
}

func (r *TutorCouponRegisterRequest) ToModel(tutorCode, categoryCode int64, now time.Time) *model.CouponModel {
	return &model.CouponModel{
		CouponName:         r.CouponName,
		CouponContents:     r.CouponContents,
		CouponDiscountRate: r.CouponDiscountRate,
		CouponStartDate:    now,
		CouponExpireDate:   r.CouponExpireDate,
		CouponFlag:         true,
		ActiveState:        true,
		CouponCategoryCode: categoryCode,
		TutorCode:          &tutorCode,
		TargetLectureCodes: EncodeLectureCodes(r.TargetLectureCodes),
	}
}

type EditCouponRequest struct {
	CouponName         *string    `json:"coupon_name" validate:"omitempty,min=1,max=100"`
	CouponContents     *string    `json:"coupon_contents" validate:"omitempty,max=2000"`
	CouponDiscountRate *int       `json:"coupon_discount_rate" validate:"omitempty,min=1,max=100"`
	CouponStartDate    *time.Time `json:"coupon_start_date"`
	CouponExpireDate   *time.Time `json:"coupon_expire_date"`
	CouponCategoryCode *int64     `json:"coupon_category_code" validate:"omitempty,gt=0"`
	TargetLectureCodes *[]int64   `json:"target_lecture_codes" validate:"omitempty,dive,gt=0"`
}

func (r *EditCouponRequest) Normalize() {
	if r.CouponName != nil {
		v := strings.TrimSpace(*r.CouponName)
		r.CouponName = &v
	}
}

func (r *EditCouponRequest) ToUpdates() map[string]any {
	up := map[string]any{}
	if r.CouponName != nil {
		up["coupon_name"] = *r.CouponName
	}
	if r.CouponContents != nil {
		up["coupon_contents"] = *r.CouponContents
	}
	if r.CouponDiscountRate != nil {
		up["coupon_discount_rate"] = *r.CouponDiscountRate
	}
	if r.CouponStartDate != nil {
		up["coupon_start_date"] = *r.CouponStartDate
	}
	if r.CouponExpireDate != nil {
		up["coupon_expire_date"] = *r.CouponExpireDate
	}
	if r.CouponCategoryCode != nil {
		up["coupon_category_code"] = *r.CouponCategoryCode
	}
	if r.TargetLectureCodes != nil {
		up["target_lecture_codes"] = EncodeLectureCodes(*r.TargetLectureCodes)
	}
	return up
}

// CouponFilterRequest is the body of POST /coupon/filter. Nil fields are ignored.
type CouponFilterRequest struct {
	CouponName         *string    `json:"coupon_name"`
	CouponCategoryCode *int64     `json:"coupon_category_code"`
	ActiveState        *bool      `json:"active_state"`
	CouponFlag         *bool      `json:"coupon_flag"`
	MinDiscountRate    *int       `json:"min_discount_rate" validate:"omitempty,min=0,max=100"`
	MaxDiscountRate    *int       `json:"max_discount_rate" validate:"omitempty,min=0,max=100"`
	StartFrom          *time.Time `json:"start_from"`
	ExpireUntil        *time.Time `json:"expire_until"`
	TutorCode          *int64     `json:"tutor_code"`
	AdminCode          *int64     `json:"admin_code"`
}

func (r *CouponFilterRequest) Normalize() {
	if r.CouponName != nil {
		v := strings.TrimSpace(*r.CouponName)
		if v == "" {
			r.CouponName = nil
		} else {
			r.CouponName = &v
		}
	}
}

type CouponCategoryResponse struct {
	CouponCategoryCode int64  `json:"coupon_category_code"`
	CouponCategoryName string `json:"coupon_category_name"`
}

func ToCouponCategoryResponses(rows []model.CouponCategoryModel) []CouponCategoryResponse {
	out := make([]CouponCategoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CouponCategoryResponse{CouponCategoryCode: r.CouponCategoryCode, CouponCategoryName: r.CouponCategoryName})
	}
	return out
}

type CouponResponse struct {
	CouponCode         int64     `json:"coupon_code"`
	CouponName         string    `json:"coupon_name"`
	CouponContents     string    `json:"coupon_contents"`
	CouponDiscountRate int       `json:"coupon_discount_rate"`
	CouponStartDate    time.Time `json:"coupon_start_date"`
	CouponExpireDate   time.Time `json:"coupon_expire_date"`
	CouponFlag         bool      `json:"coupon_flag"`
	ActiveState        bool      `json:"active_state"`
	CouponCategoryCode int64     `json:"coupon_category_code"`
	AdminCode          *int64    `json:"admin_code,omitempty"`
	TutorCode          *int64    `json:"tutor_code,omitempty"`
	TargetLectureCodes []int64   `json:"target_lecture_codes"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToCouponResponse(m *model.CouponModel, now time.Time) CouponResponse {
	return CouponResponse{
		CouponCode:         m.CouponCode,
		CouponName:         m.CouponName,
		CouponContents:     m.CouponContents,
		CouponDiscountRate: m.CouponDiscountRate,
		CouponStartDate:    m.CouponStartDate,
		CouponExpireDate:   m.CouponExpireDate,
		CouponFlag:         m.CouponFlag,
		ActiveState:        m.ActiveState,
		CouponCategoryCode: m.CouponCategoryCode,
		AdminCode:          m.AdminCode,
		TutorCode:          m.TutorCode,
		TargetLectureCodes: DecodeLectureCodes(m.TargetLectureCodes),
		Active:             m.IsActive(now),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToCouponResponses(rows []model.CouponModel, now time.Time) []CouponResponse {
	out := make([]CouponResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToCouponResponse(&rows[i], now))
	}
	return out
}

func EncodeLectureCodes(codes []int64) datatypes.JSON {
	if len(codes) == 0 {
		return nil
	}
	b, err := sonic.Marshal(codes)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

func DecodeLectureCodes(raw datatypes.JSON) []int64 {
	out := []int64{}
	if len(raw) == 0 {
		return out
	}
	_ = sonic.Unmarshal(raw, &out)
	return out
}
