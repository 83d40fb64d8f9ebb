package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	works    *service.WorkService
	about    *service.AboutService
	contacts *service.ContactService
	settings *service.SiteSettingService
	mediaURL string
}

const siteSettingsContextKey = "__site_settings"

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, siteName, mediaDir, mediaURL string) *API {
	return &API{
		works:    service.NewWorkService(gdb, mediaDir),
		about:    service.NewAboutService(gdb),
		contacts: service.NewContactService(gdb),
		settings: service.NewSiteSettingService(gdb, siteName),
		mediaURL: mediaURL,
	}
}

// siteView 收集每个页面都需要的站点信息，在单次请求内缓存。
func (a *API) siteView(c *gin.Context) SiteView {
	if cached, exists := c.Get(siteSettingsContextKey); exists {
		if view, ok := cached.(SiteView); ok {
			return view
		}
	}

	settings, err := a.settings.GetSettings()
	if err != nil {
		c.Error(err)
	}

	view := SiteView{
		Name:       strings.TrimSpace(settings.SiteName),
		OwnerEmail: strings.TrimSpace(settings.OwnerEmail),
		Year:       time.Now().Year(),
	}
	if view.Name == "" {
		view.Name = "Portfolio"
	}

	c.Set(siteSettingsContextKey, view)
	return view
}

// mediaFileURL 将媒体目录内的相对路径转换为对外可访问的 URL。
func (a *API) mediaFileURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return strings.TrimRight(a.mediaURL, "/") + "/" + strings.TrimLeft(trimmed, "/")
}
