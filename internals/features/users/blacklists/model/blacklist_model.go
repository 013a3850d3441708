package model

import (
	"time"

	memberModel "learnsmate_backend/internals/features/users/members/model"
)

type BlacklistModel struct {
	BlackCode   int64     `gorm:"column:black_code;primaryKey;autoIncrement" json:"black_code"`
	BlackReason string    `gorm:"column:black_reason;type:varchar(255);not null" json:"black_reason"`
	MemberCode  int64     `gorm:"column:member_code;not null;uniqueIndex" json:"member_code"`
	AdminCode   int64     `gorm:"column:admin_code;not null;index" json:"admin_code"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Member *memberModel.MemberModel `gorm:"foreignKey:MemberCode;references:MemberCode" json:"-"`
}

func (BlacklistModel) TableName() string {
	return "blacklist"
}
