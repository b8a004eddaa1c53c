package models

import (
	"time"
)

// Event 提示词改写审计记录，每次成功的分析调用写入一条，创建后不可变更
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"size:36;not null;index"`
	InputPrompt string    `json:"input_prompt" gorm:"type:text;not null"`
	FixedPrompt string    `json:"fixed_prompt" gorm:"type:text;not null"`
	Reason      string    `json:"reason" gorm:"size:255;not null"` // 应用的改进标签拼接
	CreatedAt   time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;references:UserID"`
}

// TableName 设置表名
func (Event) TableName() string {
	return "events"
}
