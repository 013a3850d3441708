package dto

import (
	"strings"
	"time"

	"learnsmate_backend/internals/features/users/members/model"
)

const dateLayout = "2006-01-02"

type RegisterMemberRequest struct {
	MemberType     string  `json:"member_type" validate:"required,oneof=STUDENT TUTOR"`
	MemberEmail    string  `json:"member_email" validate:"required,email,max=255"`
	MemberPassword string  `json:"member_password" validate:"required,min=8,max=72"`
	MemberName     string  `json:"member_name" validate:"required,max=100"`
	MemberPhone    string  `json:"member_phone" validate:"omitempty,max=20"`
	MemberAddress  *string `json:"member_address" validate:"omitempty,max=255"`
	MemberBirth    *string `json:"member_birth" validate:"omitempty,datetime=2006-01-02"`
}

func (r *RegisterMemberRequest) Normalize() {
	r.MemberType = strings.ToUpper(strings.TrimSpace(r.MemberType))
	r.MemberEmail = strings.ToLower(strings.TrimSpace(r.MemberEmail))
	r.MemberName = strings.TrimSpace(r.MemberName)
	r.MemberPhone = strings.TrimSpace(r.MemberPhone)
}

// ToModel builds an active member. hashed is the bcrypt password hash.
func (r *RegisterMemberRequest) ToModel(hashed string) *model.MemberModel {
	return &model.MemberModel{
		MemberType:     r.MemberType,
		MemberEmail:    r.MemberEmail,
		MemberPassword: hashed,
		MemberName:     r.MemberName,
		MemberPhone:    r.MemberPhone,
		MemberAddress:  r.MemberAddress,
		MemberBirth:    parseDate(r.MemberBirth),
		MemberFlag:     true,
	}
}

// EditMemberRequest is a partial update; nil fields are left unchanged.
type EditMemberRequest struct {
	MemberName          *string `json:"member_name" validate:"omitempty,min=1,max=100"`
	MemberPhone         *string `json:"member_phone" validate:"omitempty,max=20"`
	MemberAddress       *string `json:"member_address" validate:"omitempty,max=255"`
	MemberBirth         *string `json:"member_birth" validate:"omitempty,datetime=2006-01-02"`
	MemberDormantStatus *bool   `json:"member_dormant_status"`
}

func (r *EditMemberRequest) Normalize() {
	if r.MemberName != nil {
		v := strings.TrimSpace(*r.MemberName)
		r.MemberName = &v
	}
	if r.MemberPhone != nil {
		v := strings.TrimSpace(*r.MemberPhone)
		r.MemberPhone = &v
	}
}

// ToUpdates returns the column map for a partial update.
func (r *EditMemberRequest) ToUpdates() map[string]any {
	up := map[string]any{}
	if r.MemberName != nil {
		up["member_name"] = *r.MemberName
	}
	if r.MemberPhone != nil {
		up["member_phone"] = *r.MemberPhone
	}
	if r.MemberAddress != nil {
		up["member_address"] = *r.MemberAddress
	}
	if t := parseDate(r.MemberBirth); t != nil {
		up["member_birth"] = *t
	}
	if r.MemberDormantStatus != nil {
		up["member_dormant_status"] = *r.MemberDormantStatus
	}
	return up
}

type MemberResponse struct {
	MemberCode          int64     `json:"member_code"`
	MemberType          string    `json:"member_type"`
	MemberEmail         string    `json:"member_email"`
	MemberName          string    `json:"member_name"`
	MemberPhone         string    `json:"member_phone"`
	MemberAddress       *string   `json:"member_address,omitempty"`
	MemberBirth         *string   `json:"member_birth,omitempty"`
	MemberFlag          bool      `json:"member_flag"`
	MemberDormantStatus bool      `json:"member_dormant_status"`
	CreatedAt           time.Time `json:"created_at"`
}

func ToMemberResponse(m *model.MemberModel) MemberResponse {
	var birth *string
	if m.MemberBirth != nil {
		s := m.MemberBirth.Format(dateLayout)
		birth = &s
	}
	return MemberResponse{
		MemberCode:          m.MemberCode,
		MemberType:          m.MemberType,
		MemberEmail:         m.MemberEmail,
		MemberName:          m.MemberName,
		MemberPhone:         m.MemberPhone,
		MemberAddress:       m.MemberAddress,
		MemberBirth:         birth,
		MemberFlag:          m.MemberFlag,
		MemberDormantStatus: m.MemberDormantStatus,
		CreatedAt:           m.CreatedAt,
	}
}

func ToMemberResponses(rows []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToMemberResponse(&rows[i]))
	}
	return out
}

func parseDate(s *string) *time.Time {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil
	}
	return &t
}
