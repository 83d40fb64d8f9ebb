package db

import "gorm.io/gorm"

// SiteSetting 存储站点级的键值对配置。
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeySiteName 表示站点名称。
	SettingKeySiteName = "site_name"
	// SettingKeyOwnerEmail 表示前台展示的站长联系邮箱。
	SettingKeyOwnerEmail = "owner_email"
)
