package dto

import (
	"strings"
	"time"

	"learnsmate_backend/internals/features/users/admins/model"
)

type AdminSignupRequest struct {
	AdminEmail      string `json:"admin_email" validate:"required,email,max=255"`
	AdminPassword   string `json:"admin_password" validate:"required,min=8,max=72"`
	AdminName       string `json:"admin_name" validate:"required,max=100"`
	AdminPhone      string `json:"admin_phone" validate:"omitempty,max=20"`
	AdminDepartment string `json:"admin_department" validate:"omitempty,max=100"`
	AdminPosition   string `json:"admin_position" validate:"omitempty,max=100"`
	AdminJobType    string `json:"admin_job_type" validate:"omitempty,max=50"`
}

func (r *AdminSignupRequest) Normalize() {
	r.AdminEmail = strings.ToLower(strings.TrimSpace(r.AdminEmail))
	r.AdminName = strings.TrimSpace(r.AdminName)
	r.AdminPhone = strings.TrimSpace(r.AdminPhone)
}

func (r *AdminSignupRequest) ToModel(hashed string) *model.AdminModel {
	return &model.AdminModel{
		AdminEmail:      r.AdminEmail,
		AdminPassword:   hashed,
		AdminName:       r.AdminName,
		AdminPhone:      r.AdminPhone,
		AdminDepartment: r.AdminDepartment,
		AdminPosition:   r.AdminPosition,
		AdminJobType:    r.AdminJobType,
		AdminFlag:       true,
	}
}

type EditAdminRequest struct {
	AdminName       *string `json:"admin_name" validate:"omitempty,min=1,max=100"`
	AdminPhone      *string `json:"admin_phone" validate:"omitempty,max=20"`
	AdminDepartment *string `json:"admin_department" validate:"omitempty,max=100"`
	AdminPosition   *string `json:"admin_position" validate:"omitempty,max=100"`
	AdminJobType    *string `json:"admin_job_type" validate:"omitempty,max=50"`
	AdminFlag       *bool   `json:"admin_flag"`
}

func (r *EditAdminRequest) ToUpdates() map[string]any {
	up := map[string]any{}
	if r.AdminName != nil {
		up["admin_name"] = strings.TrimSpace(*r.AdminName)
	}
	if r.AdminPhone != nil {
		up["admin_phone"] = strings.TrimSpace(*r.AdminPhone)
	}
	if r.AdminDepartment != nil {
		up["admin_department"] = *r.AdminDepartment
	}
	if r.AdminPosition != nil {
		up["admin_position"] = *r.AdminPosition
	}
	if r.AdminJobType != nil {
		up["admin_job_type"] = *r.AdminJobType
	}
	if r.AdminFlag != nil {
		up["admin_flag"] = *r.AdminFlag
	}
	return up
}

type AdminResponse struct {
	AdminCode       int64      `json:"admin_code"`
	AdminEmail      string     `json:"admin_email"`
	AdminName       string     `json:"admin_name"`
	AdminPhone      string     `json:"admin_phone"`
	AdminDepartment string     `json:"admin_department"`
	AdminPosition   string     `json:"admin_position"`
	AdminJobType    string     `json:"admin_job_type"`
	AdminFlag       bool       `json:"admin_flag"`
	AdminLastLogin  *time.Time `json:"admin_last_login,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func ToAdminResponse(m *model.AdminModel) AdminResponse {
	return AdminResponse{
		AdminCode:       m.AdminCode,
		AdminEmail:      m.AdminEmail,
		AdminName:       m.AdminName,
		AdminPhone:      m.AdminPhone,
		AdminDepartment: m.AdminDepartment,
		AdminPosition:   m.AdminPosition,
		AdminJobType:    m.AdminJobType,
		AdminFlag:       m.AdminFlag,
		AdminLastLogin:  m.AdminLastLogin,
		CreatedAt:       m.CreatedAt,
	}
}
