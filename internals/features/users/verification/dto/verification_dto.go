package dto

import (
	"strings"

	helper "learnsmate_backend/internals/helpers"
)

type SendSmsRequest struct {
	Phone string `json:"phone" validate:"required,min=9,max=20"`
}

func (r *SendSmsRequest) Normalize() {
	r.Phone = helper.NormalizePhone(r.Phone)
}

type VerifyCodeRequest struct {
	Phone string `json:"phone" validate:"required,min=9,max=20"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

func (r *VerifyCodeRequest) Normalize() {
	r.Phone = helper.NormalizePhone(r.Phone)
	r.Code = strings.TrimSpace(r.Code)
}
