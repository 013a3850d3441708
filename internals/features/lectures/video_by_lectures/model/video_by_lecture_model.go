package model

import "time"

type VideoByLectureModel struct {
	VideoCode   int64     `gorm:"column:video_code;primaryKey;autoIncrement" json:"video_code"`
	VideoTitle  string    `gorm:"column:video_title;type:varchar(255);not null" json:"video_title"`
	VideoLink   string    `gorm:"column:video_link;type:text;not null" json:"video_link"`
	LectureCode int64     `gorm:"column:lecture_code;not null;index" json:"lecture_code"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VideoByLectureModel) TableName() string {
	return "video_by_lecture"
}
