package model

import "time"

const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

type LectureModel struct {
	LectureCode          int64     `gorm:"column:lecture_code;primaryKey;autoIncrement" json:"lecture_code"`
	LectureTitle         string    `gorm:"column:lecture_title;type:varchar(255);not null" json:"lecture_title"`
	LectureConfirmStatus bool      `gorm:"column:lecture_confirm_status;not null" json:"lecture_confirm_status"`
	LectureImage         *string   `gorm:"column:lecture_image;type:text" json:"lecture_image,omitempty"`
	LecturePrice         int       `gorm:"column:lecture_price;not null" json:"lecture_price"`
	LectureStatus        bool      `gorm:"column:lecture_status;not null" json:"lecture_status"`
	LectureClickCount    int       `gorm:"column:lecture_click_count;not null" json:"lecture_click_count"`
	LectureLevel         string    `gorm:"column:lecture_level;type:varchar(20);not null" json:"lecture_level"`
	TutorCode            int64     `gorm:"column:tutor_code;not null;index" json:"tutor_code"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LectureModel) TableName() string {
	return "lecture"
}

// OnSale reports whether students can buy the lecture.
func (m *LectureModel) OnSale() bool {
	return m.LectureStatus && m.LectureConfirmStatus
}
