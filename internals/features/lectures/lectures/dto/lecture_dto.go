package dto

import (
	"strings"
	"time"

	categoryModel "learnsmate_backend/internals/features/lectures/lecture_categories/model"
	"learnsmate_backend/internals/features/lectures/lectures/model"
)

type RegisterLectureRequest struct {
	LectureTitle  string  `json:"lecture_title" validate:"required,max=255"`
	LecturePrice  int     `json:"lecture_price" validate:"min=0"`
	LectureLevel  string  `json:"lecture_level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	TutorCode     *int64  `json:"tutor_code" validate:"omitempty,gt=0"`
	CategoryCodes []int64 `json:"lecture_category_codes" validate:"omitempty,max=10,dive,gt=0"`
}

func (r *RegisterLectureRequest) Normalize() {
	r.LectureTitle = strings.TrimSpace(r.LectureTitle)
	r.LectureLevel = strings.ToUpper(strings.TrimSpace(r.LectureLevel))
}

// ToModel builds an on-sale lecture awaiting admin confirmation.
func (r *RegisterLectureRequest) ToModel(tutorCode int64) *model.LectureModel {
	return &model.LectureModel{
		LectureTitle:         r.LectureTitle,
		LecturePrice:         r.LecturePrice,
		LectureLevel:         r.LectureLevel,
		LectureStatus:        true,
		LectureConfirmStatus: false,
		TutorCode:            tutorCode,
	}
}

type EditLectureRequest struct {
	LectureTitle *string `json:"lecture_title" validate:"omitempty,min=1,max=255"`
	LecturePrice *int    `json:"lecture_price" validate:"omitempty,min=0"`
	LectureLevel *string `json:"lecture_level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

func (r *EditLectureRequest) Normalize() {
	if r.LectureTitle != nil {
		v := strings.TrimSpace(*r.LectureTitle)
		r.LectureTitle = &v
	}
	if r.LectureLevel != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.LectureLevel))
		r.LectureLevel = &v
	}
}

func (r *EditLectureRequest) ToUpdates() map[string]any {
	up := map[string]any{}
	if r.LectureTitle != nil {
		up["lecture_title"] = *r.LectureTitle
	}
	if r.LecturePrice != nil {
		up["lecture_price"] = *r.LecturePrice
	}
	if r.LectureLevel != nil {
		up["lecture_level"] = *r.LectureLevel
	}
	return up
}

type LectureCategory struct {
	LectureCategoryCode int64  `json:"lecture_category_code"`
	LectureCategoryName string `json:"lecture_category_name"`
}

type LectureResponse struct {
	LectureCode          int64             `json:"lecture_code"`
	LectureTitle         string            `json:"lecture_title"`
	LectureConfirmStatus bool              `json:"lecture_confirm_status"`
	LectureImage         *string           `json:"lecture_image,omitempty"`
	LecturePrice         int               `json:"lecture_price"`
	LectureStatus        bool              `json:"lecture_status"`
	LectureClickCount    int               `json:"lecture_click_count"`
	LectureLevel         string            `json:"lecture_level"`
	TutorCode            int64             `json:"tutor_code"`
	VideoCount           *int64            `json:"video_count,omitempty"`
	Categories           []LectureCategory `json:"lecture_categories,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func ToLectureResponse(m *model.LectureModel) LectureResponse {
	return LectureResponse{
		LectureCode:          m.LectureCode,
		LectureTitle:         m.LectureTitle,
		LectureConfirmStatus: m.LectureConfirmStatus,
		LectureImage:         m.LectureImage,
		LecturePrice:         m.LecturePrice,
		LectureStatus:        m.LectureStatus,
		LectureClickCount:    m.LectureClickCount,
		LectureLevel:         m.LectureLevel,
		TutorCode:            m.TutorCode,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func ToLectureResponses(rows []model.LectureModel) []LectureResponse {
	out := make([]LectureResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToLectureResponse(&rows[i]))
	}
	return out
}

func ToLectureCategories(rows []categoryModel.LectureCategoryModel) []LectureCategory {
	out := make([]LectureCategory, 0, len(rows))
	for _, r := range rows {
		out = append(out, LectureCategory{LectureCategoryCode: r.LectureCategoryCode, LectureCategoryName: r.LectureCategoryName})
	}
	return out
}
