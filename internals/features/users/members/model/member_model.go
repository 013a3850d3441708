package model

import "time"

type MemberModel struct {
	MemberCode          int64      `gorm:"column:member_code;primaryKey;autoIncrement" json:"member_code"`
	MemberType          string     `gorm:"column:member_type;type:varchar(20);not null;index" json:"member_type"`
	MemberEmail         string     `gorm:"column:member_email;type:varchar(255);not null;uniqueIndex" json:"member_email"`
	MemberPassword      string     `gorm:"column:member_password;type:varchar(255);not null" json:"-"`
	MemberName          string     `gorm:"column:member_name;type:varchar(100);not null" json:"member_name"`
	MemberPhone         string     `gorm:"column:member_phone;type:varchar(20)" json:"member_phone"`
	MemberAddress       *string    `gorm:"column:member_address;type:varchar(255)" json:"member_address,omitempty"`
	MemberBirth         *time.Time `gorm:"column:member_birth;type:date" json:"member_birth,omitempty"`
	MemberFlag          bool       `gorm:"column:member_flag;not null" json:"member_flag"`
	MemberDormantStatus bool       `gorm:"column:member_dormant_status;not null" json:"member_dormant_status"`
	GoogleSub           *string    `gorm:"column:google_sub;type:varchar(255);uniqueIndex" json:"-"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MemberModel) TableName() string {
	return "member"
}
