package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/handler"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由。
// 数据库句柄由调用方显式传入，路由层不持有全局连接。
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件，用于联系表单提交后的回执提示
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("portfolio_session", store))

	r.LoadHTMLGlob(cfg.TemplateGlob)

	// 媒体文件服务，作品引用的图片与视频从这里读取
	r.Static(cfg.MediaURLPath, cfg.MediaDir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := handler.NewAPI(gdb, cfg.SiteName, cfg.MediaDir, cfg.MediaURLPath)

	// 公开页面路由，未匹配的路径走 Gin 默认 404
	r.GET("/", api.ShowHome)
	r.GET("/about/", api.ShowAbout)
	r.GET("/contact/", api.ShowContact)
	r.POST("/contact/", api.SubmitContact)

	return r
}
