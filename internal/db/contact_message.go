package db

import "gorm.io/gorm"

const (
	// ContactStatusNew 表示尚未处理的留言。
	ContactStatusNew = "new"
	// ContactStatusRead 表示已读留言。
	ContactStatusRead = "read"
)

// ContactMessage 保存访客通过联系表单提交的留言
// Reference 为对外展示的提交凭证，创建时生成
type ContactMessage struct {
	gorm.Model
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	Reference string `gorm:"size:36;uniqueIndex;not null"`
	Status    string `gorm:"size:20;default:new"`
}

// TableName 返回自定义表名，避免冲突。
func (ContactMessage) TableName() string {
	return "contact_messages"
}
