package dto

import (
	"strings"
	"time"

	"learnsmate_backend/internals/features/users/blacklists/model"
)

type RegisterBlacklistRequest struct {
	MemberCode  int64  `json:"member_code" validate:"required,gt=0"`
	BlackReason string `json:"black_reason" validate:"required,max=255"`
}

func (r *RegisterBlacklistRequest) Normalize() {
	r.BlackReason = strings.TrimSpace(r.BlackReason)
}

// BlacklistResponse is the list/detail row returned to admins.
type BlacklistResponse struct {
	BlackCode   int64     `json:"black_code"`
	BlackReason string    `json:"black_reason"`
	CreatedAt   time.Time `json:"created_at"`
	MemberCode  int64     `json:"member_code"`
	AdminCode   int64     `json:"admin_code"`
	MemberName  string    `json:"member_name,omitempty"`
	MemberEmail string    `json:"member_email,omitempty"`
}

func ToBlacklistResponse(m *model.BlacklistModel) BlacklistResponse {
	resp := BlacklistResponse{
		BlackCode:   m.BlackCode,
		BlackReason: m.BlackReason,
		CreatedAt:   m.CreatedAt,
		MemberCode:  m.MemberCode,
		AdminCode:   m.AdminCode,
	}
	if m.Member != nil {
		resp.MemberName = m.Member.MemberName
		resp.MemberEmail = m.Member.MemberEmail
	}
	return resp
}

func ToBlacklistResponses(rows []model.BlacklistModel) []BlacklistResponse {
	out := make([]BlacklistResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToBlacklistResponse(&rows[i]))
	}
	return out
}
