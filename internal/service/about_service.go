package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrAboutNotFound       = errors.New("about section not found")
	ErrAboutContentMissing = errors.New("about content is required")
)

// aboutSectionKey 是关于板块唯一行使用的固定键。
const aboutSectionKey = "about"

// AboutService provides access to the single About section of the site.
// The section is stored under a fixed key with a unique index, so the
// table holds at most one row.
type AboutService struct {
	db *gorm.DB
}

// NewAboutService returns a new AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// Get fetches the about section, or ErrAboutNotFound when none was saved yet.
func (s *AboutService) Get() (*db.AboutSection, error) {
	var section db.AboutSection
	if err := s.db.Where("key = ?", aboutSectionKey).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, err
	}
	return &section, nil
}

// Save creates or updates the about section content.
func (s *AboutService) Save(content string) (*db.AboutSection, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrAboutContentMissing
	}

	var section db.AboutSection
	err := s.db.Where("key = ?", aboutSectionKey).First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			section = db.AboutSection{
				Key:     aboutSectionKey,
				Content: trimmed,
			}
			if err := s.db.Create(&section).Error; err != nil {
				return nil, err
			}
			return &section, nil
		}
		return nil, err
	}

	section.Content = trimmed
	if err := s.db.Save(&section).Error; err != nil {
		return nil, err
	}

	return &section, nil
}
