package service

import (
	"fmt"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettings 描述前台展示使用的站点信息。
type SiteSettings struct {
	SiteName   string
	OwnerEmail string
}

// SiteSettingsInput 用于更新站点设置。
type SiteSettingsInput struct {
	SiteName   string
	OwnerEmail string
}

// SiteSettingService 提供站点设置的读取与更新能力。
type SiteSettingService struct {
	db          *gorm.DB
	defaultName string
}

// NewSiteSettingService 构造 SiteSettingService。
// defaultName 在站点名称未设置时作为回退值。
func NewSiteSettingService(gdb *gorm.DB, defaultName string) *SiteSettingService {
	name := strings.TrimSpace(defaultName)
	if name == "" {
		name = "Portfolio"
	}
	return &SiteSettingService{db: gdb, defaultName: name}
}

var settingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeyOwnerEmail,
}

// GetSettings 读取站点设置，如未设置将返回默认值。
func (s *SiteSettingService) GetSettings() (SiteSettings, error) {
	result := SiteSettings{SiteName: s.defaultName}

	var records []db.SiteSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		switch record.Key {
		case db.SettingKeySiteName:
			if strings.TrimSpace(record.Value) != "" {
				result.SiteName = record.Value
			}
		case db.SettingKeyOwnerEmail:
			result.OwnerEmail = record.Value
		}
	}

	return result, nil
}

// UpdateSettings 保存站点设置，未填写站点名称时回退默认值。
func (s *SiteSettingService) UpdateSettings(input SiteSettingsInput) (SiteSettings, error) {
	sanitized := SiteSettings{
		SiteName:   strings.TrimSpace(input.SiteName),
		OwnerEmail: strings.TrimSpace(input.OwnerEmail),
	}
	if sanitized.SiteName == "" {
		sanitized.SiteName = s.defaultName
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertSetting(tx, db.SettingKeySiteName, sanitized.SiteName); err != nil {
			return err
		}
		if err := upsertSetting(tx, db.SettingKeyOwnerEmail, sanitized.OwnerEmail); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return SiteSettings{}, fmt.Errorf("update site settings: %w", err)
	}

	return sanitized, nil
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
