package dto

import (
	"strings"
	"time"

	helper "learnsmate_backend/internals/helpers"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=9,max=20"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = helper.NormalizePhone(r.Phone)
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Code        int64     `json:"code"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
}

type EmailCheckResponse struct {
	Email     string `json:"email"`
	Available bool   `json:"available"`
}
