package dto

import (
	"time"

	"learnsmate_backend/internals/features/lectures/lecture_by_students/model"
)

type GrantLectureRequest struct {
	LectureCode int64 `json:"lecture_code" validate:"required,gt=0"`
	StudentCode int64 `json:"student_code" validate:"required,gt=0"`
}

type LectureByStudentResponse struct {
	LectureByStudentCode int64     `json:"lecture_by_student_code"`
	LectureCode          int64     `json:"lecture_code"`
	StudentCode          int64     `json:"student_code"`
	OwnStatus            bool      `json:"own_status"`
	LectureTitle         string    `json:"lecture_title,omitempty"`
	LectureImage         *string   `json:"lecture_image,omitempty"`
	LectureLevel         string    `json:"lecture_level,omitempty"`
	TutorCode            int64     `json:"tutor_code,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func ToLectureByStudentResponse(m *model.LectureByStudentModel) LectureByStudentResponse {
	resp := LectureByStudentResponse{
		LectureByStudentCode: m.LectureByStudentCode,
		LectureCode:          m.LectureCode,
		StudentCode:          m.StudentCode,
		OwnStatus:            m.OwnStatus,
		CreatedAt:            m.CreatedAt,
	}
	if m.Lecture != nil {
		resp.LectureTitle = m.Lecture.LectureTitle
		resp.LectureImage = m.Lecture.LectureImage
		resp.LectureLevel = m.Lecture.LectureLevel
		resp.TutorCode = m.Lecture.TutorCode
	}
	return resp
}

func ToLectureByStudentResponses(rows []model.LectureByStudentModel) []LectureByStudentResponse {
	out := make([]LectureByStudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToLectureByStudentResponse(&rows[i]))
	}
	return out
}
