package model

import "time"

type AdminModel struct {
	AdminCode       int64      `gorm:"column:admin_code;primaryKey;autoIncrement" json:"admin_code"`
	AdminEmail      string     `gorm:"column:admin_email;type:varchar(255);not null;uniqueIndex" json:"admin_email"`
	AdminPassword   string     `gorm:"column:admin_password;type:varchar(255);not null" json:"-"`
	AdminName       string     `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminPhone      string     `gorm:"column:admin_phone;type:varchar(20)" json:"admin_phone"`
	AdminDepartment string     `gorm:"column:admin_department;type:varchar(100)" json:"admin_department"`
	AdminPosition   string     `gorm:"column:admin_position;type:varchar(100)" json:"admin_position"`
	AdminJobType    string     `gorm:"column:admin_job_type;type:varchar(50)" json:"admin_job_type"`
	AdminFlag       bool       `gorm:"column:admin_flag;not null" json:"admin_flag"`
	AdminLastLogin  *time.Time `gorm:"column:admin_last_login" json:"admin_last_login,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string {
	return "admin"
}
