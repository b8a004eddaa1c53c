package models

import (
	"time"
	"unicode/utf8"
)

const (
	// RoleUser 用户发言
	RoleUser = "user"
	// RoleAI 模型回复
	RoleAI = "ai"
)

// TopicMaxLen 话题字段最大长度（与列宽一致，超出部分截断）
const TopicMaxLen = 255

// History 会话话题记录，每个会话轮次一条，只增不改
type History struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:36;not null;index:idx_hist_user_room_created,priority:1"`
	RoomID    string    `json:"room_id" gorm:"size:64;not null;index:idx_hist_user_room_created,priority:2"`
	Role      string    `json:"role" gorm:"size:10;not null;default:user"` // user/ai
	Topic     string    `json:"topic" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_hist_user_room_created,priority:3,sort:desc"`

	User User `json:"-" gorm:"foreignKey:UserID;references:UserID"`
}

// TableName 设置表名
func (History) TableName() string {
	return "histories"
}

// TruncateTopic 按列宽截断话题文本（按字符截断，避免截出半个多字节字符）
func TruncateTopic(s string) string {
	if utf8.RuneCountInString(s) <= TopicMaxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:TopicMaxLen])
}
