package models

import (
	"time"
)

const (
	// GradeGeneral 普通用户
	GradeGeneral = "general"
	// GradeVIP 会员用户
	GradeVIP = "vip"
)

// User 用户模型
// 以客户端生成的设备 UUID 作为主键，首次请求时自动创建，不做删除
type User struct {
	UserID      string     `json:"user_id" gorm:"primaryKey;size:36"`
	Nickname    string     `json:"nickname" gorm:"size:50"`
	Password    string     `json:"-" gorm:"size:255"` // bcrypt 哈希，未注册账号时为空
	Email       string     `json:"email" gorm:"size:100"`
	Grade       string     `json:"grade" gorm:"size:20;default:general;index"` // general/vip
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
