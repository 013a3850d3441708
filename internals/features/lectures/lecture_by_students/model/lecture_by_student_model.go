package model

import (
	"time"

	lectureModel "learnsmate_backend/internals/features/lectures/lectures/model"
)

type LectureByStudentModel struct {
	LectureByStudentCode int64     `gorm:"column:lecture_by_student_code;primaryKey;autoIncrement" json:"lecture_by_student_code"`
	LectureCode          int64     `gorm:"column:lecture_code;not null;uniqueIndex:uq_lecture_student" json:"lecture_code"`
	StudentCode          int64     `gorm:"column:student_code;not null;uniqueIndex:uq_lecture_student;index" json:"student_code"`
	OwnStatus            bool      `gorm:"column:own_status;not null" json:"own_status"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Lecture *lectureModel.LectureModel `gorm:"foreignKey:LectureCode;references:LectureCode" json:"-"`
}

func (LectureByStudentModel) TableName() string {
	return "lecture_by_student"
}
