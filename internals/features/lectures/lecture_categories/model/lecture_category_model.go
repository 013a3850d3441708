package model

import "time"

type LectureCategoryModel struct {
	LectureCategoryCode int64     `gorm:"column:lecture_category_code;primaryKey;autoIncrement" json:"lecture_category_code"`
	LectureCategoryName string    `gorm:"column:lecture_category_name;type:varchar(100);not null;uniqueIndex" json:"lecture_category_name"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LectureCategoryModel) TableName() string {
	return "lecture_category"
}

type LectureCategoryByLectureModel struct {
	LectureCategoryByLectureCode int64     `gorm:"column:lecture_category_by_lecture_code;primaryKey;autoIncrement" json:"lecture_category_by_lecture_code"`
	LectureCode                  int64     `gorm:"column:lecture_code;not null;uniqueIndex:uq_lecture_category_pair" json:"lecture_code"`
	LectureCategoryCode          int64     `gorm:"column:lecture_category_code;not null;uniqueIndex:uq_lecture_category_pair" json:"lecture_category_code"`
	CreatedAt                    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Category *LectureCategoryModel `gorm:"foreignKey:LectureCategoryCode;references:LectureCategoryCode" json:"-"`
}

func (LectureCategoryByLectureModel) TableName() string {
	return "lecture_category_by_lecture"
}
