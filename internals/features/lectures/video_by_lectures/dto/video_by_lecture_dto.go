package dto

import (
	"strings"
	"time"

	"learnsmate_backend/internals/features/lectures/video_by_lectures/model"
)

type RegisterVideoRequest struct {
	VideoTitle string `json:"video_title" validate:"required,max=255"`
	VideoLink  string `json:"video_link" validate:"required,url,max=2048"`
}

func (r *RegisterVideoRequest) Normalize() {
	r.VideoTitle = strings.TrimSpace(r.VideoTitle)
	r.VideoLink = strings.TrimSpace(r.VideoLink)
}

type VideoResponse struct {
	VideoCode   int64     `json:"video_code"`
	VideoTitle  string    `json:"video_title"`
	VideoLink   string    `json:"video_link"`
	LectureCode int64     `json:"lecture_code"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToVideoResponse(m *model.VideoByLectureModel) VideoResponse {
	return VideoResponse{
		VideoCode:   m.VideoCode,
		VideoTitle:  m.VideoTitle,
		VideoLink:   m.VideoLink,
		LectureCode: m.LectureCode,
		CreatedAt:   m.CreatedAt,
	}
}

func ToVideoResponses(rows []model.VideoByLectureModel) []VideoResponse {
	out := make([]VideoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToVideoResponse(&rows[i]))
	}
	return out
}
