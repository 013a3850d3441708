package dto

import (
	"strings"

	"learnsmate_backend/internals/features/lectures/lecture_categories/model"
)

type LectureCategoryRequest struct {
	LectureCategoryName string `json:"lecture_category_name" validate:"required,max=100"`
}

func (r *LectureCategoryRequest) Normalize() {
	r.LectureCategoryName = strings.TrimSpace(r.LectureCategoryName)
}

type AttachCategoriesRequest struct {
	LectureCategoryCodes []int64 `json:"lecture_category_codes" validate:"required,min=1,max=10,dive,gt=0"`
}

type LectureCategoryResponse struct {
	LectureCategoryCode int64  `json:"lecture_category_code"`
	LectureCategoryName string `json:"lecture_category_name"`
}

func ToLectureCategoryResponses(rows []model.LectureCategoryModel) []LectureCategoryResponse {
	out := make([]LectureCategoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, LectureCategoryResponse{LectureCategoryCode: r.LectureCategoryCode, LectureCategoryName: r.LectureCategoryName})
	}
	return out
}
