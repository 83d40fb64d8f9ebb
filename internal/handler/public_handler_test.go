package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		SessionSecret: "test-secret",
		MediaDir:      t.TempDir(),
		MediaURLPath:  "/media",
		TemplateGlob:  "../../web/template/*.html",
		SiteName:      "测试站点",
	}
}

func setupPublicTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Work{}, &db.AboutSection{}, &db.ContactMessage{}, &db.SiteSetting{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestShowHomeListsEachWorkOnce(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	works := []db.Work{
		{Title: "海边写生", Description: "一组关于海岸线的速写"},
		{Title: "城市夜景", Description: "长曝光记录的城市灯光"},
	}
	for i := range works {
		if err := gdb.Create(&works[i]).Error; err != nil {
			t.Fatalf("failed to seed work: %v", err)
		}
	}

	r := router.SetupRouter(gdb, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("expected HTML content type, got %s", w.Header().Get("Content-Type"))
	}

	body := w.Body.String()
	for _, work := range works {
		if count := strings.Count(body, work.Title); count != 1 {
			t.Fatalf("expected title %q exactly once, got %d", work.Title, count)
		}
		if count := strings.Count(body, work.Description); count != 1 {
			t.Fatalf("expected description %q exactly once, got %d", work.Description, count)
		}
	}
}

func TestShowHomeIncludesAboutSection(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	if err := gdb.Create(&db.AboutSection{Key: "about", Content: "独立摄影师，现居上海。"}).Error; err != nil {
		t.Fatalf("failed to seed about section: %v", err)
	}

	r := router.SetupRouter(gdb, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "独立摄影师，现居上海。") {
		t.Fatal("expected home page to include about content")
	}
}

func TestShowHomeWithoutAboutSection(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	r := router.SetupRouter(gdb, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 without about row, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "id=\"about\"") {
		t.Fatal("expected about block to be omitted when no row exists")
	}
}

func TestShowHomeRendersVideoEmbed(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	work := db.Work{
		Title:       "动态影像",
		Description: "一支短片",
		VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}
	if err := gdb.Create(&work).Error; err != nil {
		t.Fatalf("failed to seed work: %v", err)
	}

	r := router.SetupRouter(gdb, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "youtube.com/embed/dQw4w9WgXcQ") {
		t.Fatal("expected home page to embed the work video")
	}
}

func TestShowAboutFallback(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	r := router.SetupRouter(gdb, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "暂无简介") {
		t.Fatal("expected empty-state copy when no about row exists")
	}
}

func TestShowAboutRendersMarkdown(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	if err := gdb.Create(&db.AboutSection{Key: "about", Content: "# 关于我\n独立开发者"}).Error; err != nil {
		t.Fatalf("failed to seed about section: %v", err)
	}

	r := router.SetupRouter(gdb, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<h1") || !strings.Contains(body, "关于我") {
		t.Fatal("expected markdown heading to be rendered")
	}
	if !strings.Contains(body, "独立开发者") {
		t.Fatal("expected about body text to be rendered")
	}
}

func TestPublicPagesServeHTML(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	r := router.SetupRouter(gdb, testConfig(t))

	for _, path := range []string{"/", "/about/", "/contact/"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", path, w.Code)
		}
		if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
			t.Fatalf("expected HTML content type for %s, got %s", path, w.Header().Get("Content-Type"))
		}
	}
}

func TestUnknownPathReturnsNotFound(t *testing.T) {
	gdb, cleanup := setupPublicTestDB(t)
	defer cleanup()

	r := router.SetupRouter(gdb, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent-path", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
