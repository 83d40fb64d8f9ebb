package service

import (
	"testing"

	"github.com/portfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSiteSettingTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.SiteSetting{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSiteSettingsDefaults(t *testing.T) {
	gdb, cleanup := setupSiteSettingTestDB(t)
	defer cleanup()

	svc := NewSiteSettingService(gdb, "My Portfolio")
	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if settings.SiteName != "My Portfolio" {
		t.Fatalf("expected default site name, got %s", settings.SiteName)
	}
	if settings.OwnerEmail != "" {
		t.Fatalf("expected empty owner email, got %s", settings.OwnerEmail)
	}
}

func TestSiteSettingsUpdateRoundTrip(t *testing.T) {
	gdb, cleanup := setupSiteSettingTestDB(t)
	defer cleanup()

	svc := NewSiteSettingService(gdb, "Portfolio")
	if _, err := svc.UpdateSettings(SiteSettingsInput{SiteName: "作品集", OwnerEmail: "owner@example.com"}); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if settings.SiteName != "作品集" || settings.OwnerEmail != "owner@example.com" {
		t.Fatalf("expected persisted settings, got %+v", settings)
	}

	// 再次更新时应覆盖原值，而不是新增键
	if _, err := svc.UpdateSettings(SiteSettingsInput{SiteName: "", OwnerEmail: "hello@example.com"}); err != nil {
		t.Fatalf("UpdateSettings returned error: %v", err)
	}

	settings, err = svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings returned error: %v", err)
	}
	if settings.SiteName != "Portfolio" {
		t.Fatalf("expected fallback site name, got %s", settings.SiteName)
	}
	if settings.OwnerEmail != "hello@example.com" {
		t.Fatalf("expected updated owner email, got %s", settings.OwnerEmail)
	}

	var count int64
	if err := gdb.Model(&db.SiteSetting{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count settings: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 setting rows, got %d", count)
	}
}
