package db

import "gorm.io/gorm"

// Work 定义了作品模型
// ImagePath/VideoURL 均为可选，指向媒体目录下的文件或外部视频链接
type Work struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	ImagePath   string `gorm:"size:255"`
	ImageWidth  int
	ImageHeight int
	VideoURL    string `gorm:"size:255"`
}
