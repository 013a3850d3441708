package dto

import (
	"strings"
	"time"

	"learnsmate_backend/internals/features/vocs/model"
)

const (
	SatisfactionGood   = "GOOD"
	SatisfactionNormal = "NORMAL"
	SatisfactionBad    = "BAD"
)

type VocCategoryRequest struct {
	VocCategoryName string `json:"voc_category_name" validate:"required,max=100"`
}

type VocCategoryResponse struct {
	VocCategoryCode int64  `json:"voc_category_code"`
	VocCategoryName string `json:"voc_category_name"`
}

func ToVocCategoryResponses(rows []model.VocCategoryModel) []VocCategoryResponse {
	out := make([]VocCategoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, VocCategoryResponse{VocCategoryCode: r.VocCategoryCode, VocCategoryName: r.VocCategoryName})
	}
	return out
}

type RegisterVocRequest struct {
	VocCategoryCode int64  `json:"voc_category_code" validate:"required,gt=0"`
	VocContent      string `json:"voc_content" validate:"required,max=2000"`
}

func (r *RegisterVocRequest) Normalize() {
	r.VocContent = strings.TrimSpace(r.VocContent)
}

type AnswerVocRequest struct {
	VocAnswerContent string `json:"voc_answer_content" validate:"required,max=2000"`
}

type SatisfactionRequest struct {
	VocAnswerSatisfaction string `json:"voc_answer_satisfaction" validate:"required,oneof=GOOD NORMAL BAD"`
}

// VocFilterRequest narrows the public VOC list. Nil fields are ignored.
type VocFilterRequest struct {
	VocCategoryCode *int64     `json:"voc_category_code"`
	VocAnswerStatus *bool      `json:"voc_answer_status"`
	MemberType      *string    `json:"member_type" validate:"omitempty,oneof=STUDENT TUTOR"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Keyword         *string    `json:"keyword" validate:"omitempty,max=100"`
}

type VocAnswerResponse struct {
	VocAnswerCode    int64     `json:"voc_answer_code"`
	VocAnswerContent string    `json:"voc_answer_content"`
	AdminCode        int64     `json:"admin_code"`
	CreatedAt        time.Time `json:"created_at"`
}

type VocResponse struct {
	VocCode               string             `json:"voc_code"`
	VocContent            string             `json:"voc_content"`
	VocAnswerStatus       bool               `json:"voc_answer_status"`
	VocAnswerSatisfaction *string            `json:"voc_answer_satisfaction,omitempty"`
	VocCategoryCode       int64              `json:"voc_category_code"`
	MemberCode            int64              `json:"member_code"`
	CreatedAt             time.Time          `json:"created_at"`
	Answer                *VocAnswerResponse `json:"answer,omitempty"`
}

func ToVocResponse(m *model.VocModel) VocResponse {
	resp := VocResponse{
		VocCode:               m.VocCode,
		VocContent:            m.VocContent,
		VocAnswerStatus:       m.VocAnswerStatus,
		VocAnswerSatisfaction: m.VocAnswerSatisfaction,
		VocCategoryCode:       m.VocCategoryCode,
		MemberCode:            m.MemberCode,
		CreatedAt:             m.CreatedAt,
	}
	if a := m.Answer; a != nil {
		resp.Answer = &VocAnswerResponse{
			VocAnswerCode:    a.VocAnswerCode,
			VocAnswerContent: a.VocAnswerContent,
			AdminCode:        a.AdminCode,
			CreatedAt:        a.CreatedAt,
		}
	}
	return resp
}

func ToVocResponses(rows []model.VocModel) []VocResponse {
	out := make([]VocResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToVocResponse(&rows[i]))
	}
	return out
}

type VocCountByCategory struct {
	VocCategoryCode int64  `json:"voc_category_code"`
	VocCategoryName string `json:"voc_category_name"`
	Count           int64  `json:"count"`
}
