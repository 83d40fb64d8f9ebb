package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrWorkNotFound 在指定的作品不存在时返回
	ErrWorkNotFound = errors.New("work not found")
	// ErrWorkInvalidInput 在输入数据不完整时返回
	ErrWorkInvalidInput = errors.New("invalid work input")
)

// WorkService 负责维护作品集条目
// 提供增删改查能力，与 handler 解耦
type WorkService struct {
	db       *gorm.DB
	mediaDir string
}

// NewWorkService 构造 WorkService。
// mediaDir 指向媒体文件根目录，用于补齐图片尺寸信息。
func NewWorkService(gdb *gorm.DB, mediaDir string) *WorkService {
	return &WorkService{db: gdb, mediaDir: mediaDir}
}

// WorkInput 描述创建或更新作品时可设置的字段
type WorkInput struct {
	Title       string
	Description string
	ImagePath   string
	ImageWidth  int
	ImageHeight int
	VideoURL    string
}

// List 返回全部作品，按插入顺序排列。
func (s *WorkService) List() ([]db.Work, error) {
	var works []db.Work
	if err := s.db.Order("id ASC").Find(&works).Error; err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return works, nil
}

// Get 根据主键获取作品
func (s *WorkService) Get(id uint) (*db.Work, error) {
	var work db.Work
	if err := s.db.First(&work, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("get work: %w", err)
	}
	return &work, nil
}

// Create 新建作品，图片尺寸缺失时尝试从媒体文件读取
func (s *WorkService) Create(input WorkInput) (*db.Work, error) {
	if err := validateWorkInput(input); err != nil {
		return nil, err
	}

	work := db.Work{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImagePath:   strings.TrimSpace(input.ImagePath),
		ImageWidth:  input.ImageWidth,
		ImageHeight: input.ImageHeight,
		VideoURL:    strings.TrimSpace(input.VideoURL),
	}
	s.fillImageSize(&work)

	if err := s.db.Create(&work).Error; err != nil {
		return nil, fmt.Errorf("create work: %w", err)
	}
	return &work, nil
}

// Update 更新指定作品
func (s *WorkService) Update(id uint, input WorkInput) (*db.Work, error) {
	if err := validateWorkInput(input); err != nil {
		return nil, err
	}

	var work db.Work
	if err := s.db.First(&work, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("find work: %w", err)
	}

	work.Title = strings.TrimSpace(input.Title)
	work.Description = strings.TrimSpace(input.Description)
	work.ImagePath = strings.TrimSpace(input.ImagePath)
	work.ImageWidth = input.ImageWidth
	work.ImageHeight = input.ImageHeight
	work.VideoURL = strings.TrimSpace(input.VideoURL)
	s.fillImageSize(&work)

	if err := s.db.Save(&work).Error; err != nil {
		return nil, fmt.Errorf("update work: %w", err)
	}
	return &work, nil
}

// Delete 删除指定作品
func (s *WorkService) Delete(id uint) error {
	var work db.Work
	if err := s.db.First(&work, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return fmt.Errorf("find work: %w", err)
	}
	if err := s.db.Delete(&work).Error; err != nil {
		return fmt.Errorf("delete work: %w", err)
	}
	return nil
}

// fillImageSize 在尺寸缺失且图片文件可读时补齐宽高。
// 读取失败不视为错误，尺寸保持为零值。
func (s *WorkService) fillImageSize(work *db.Work) {
	if work.ImagePath == "" || (work.ImageWidth > 0 && work.ImageHeight > 0) {
		return
	}
	width, height, err := imageDimensions(s.mediaDir, work.ImagePath)
	if err != nil {
		return
	}
	work.ImageWidth = width
	work.ImageHeight = height
}

func validateWorkInput(input WorkInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrWorkInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrWorkInvalidInput)
	}
	return nil
}
