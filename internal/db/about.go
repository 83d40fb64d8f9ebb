package db

import "gorm.io/gorm"

// AboutSection represents the single biographical text block on the site.
// Key carries a fixed singleton value so the table can never hold more
// than one meaningful row.
type AboutSection struct {
	gorm.Model
	Key     string `gorm:"size:50;uniqueIndex;not null"`
	Content string `gorm:"type:text;not null"`
}

// TableName 返回自定义表名，保持命名一致。
func (AboutSection) TableName() string {
	return "about_sections"
}
