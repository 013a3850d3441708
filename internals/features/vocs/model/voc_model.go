package model

import "time"

type VocCategoryModel struct {
	VocCategoryCode int64     `gorm:"column:voc_category_code;primaryKey;autoIncrement" json:"voc_category_code"`
	VocCategoryName string    `gorm:"column:voc_category_name;type:varchar(100);not null;uniqueIndex" json:"voc_category_name"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VocCategoryModel) TableName() string {
	return "voc_category"
}

type VocModel struct {
	VocCode               string    `gorm:"column:voc_code;primaryKey;type:varchar(36)" json:"voc_code"`
	VocContent            string    `gorm:"column:voc_content;type:text;not null" json:"voc_content"`
	VocAnswerStatus       bool      `gorm:"column:voc_answer_status;not null;index" json:"voc_answer_status"`
	VocAnswerSatisfaction *string   `gorm:"column:voc_answer_satisfaction;type:varchar(20)" json:"voc_answer_satisfaction,omitempty"`
	VocCategoryCode       int64     `gorm:"column:voc_category_code;not null;index" json:"voc_category_code"`
	MemberCode            int64     `gorm:"column:member_code;not null;index" json:"member_code"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Answer *VocAnswerModel `gorm:"foreignKey:VocCode;references:VocCode" json:"-"`
}

func (VocModel) TableName() string {
	return "voc"
}

type VocAnswerModel struct {
	VocAnswerCode    int64     `gorm:"column:voc_answer_code;primaryKey;autoIncrement" json:"voc_answer_code"`
	VocAnswerContent string    `gorm:"column:voc_answer_content;type:text;not null" json:"voc_answer_content"`
	VocCode          string    `gorm:"column:voc_code;type:varchar(36);not null;uniqueIndex" json:"voc_code"`
	AdminCode        int64     `gorm:"column:admin_code;not null" json:"admin_code"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VocAnswerModel) TableName() string {
	return "voc_answer"
}
