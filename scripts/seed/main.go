package main

import (
	"fmt"
	"log"

	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

// 本地开发用的演示数据生成器
func main() {
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	var count int64
	if err := gdb.Model(&db.Work{}).Count(&count).Error; err != nil {
		log.Fatal("查询作品数量失败:", err)
	}
	if count > 0 {
		fmt.Println("作品已存在，无需初始化")
		return
	}

	works := service.NewWorkService(gdb, cfg.MediaDir)
	samples := []service.WorkInput{
		{
			Title:       "海边写生",
			Description: "一组关于海岸线的速写，记录潮汐与光线的变化。",
			ImagePath:   "works/seaside.jpg",
		},
		{
			Title:       "城市夜景",
			Description: "长曝光拍摄的城市灯光轨迹。",
			ImagePath:   "works/city-night.jpg",
			VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			Title:       "动态影像",
			Description: "为展览制作的一支短片。",
			VideoURL:    "works_videos/exhibition.mp4",
		},
	}
	for _, input := range samples {
		if _, err := works.Create(input); err != nil {
			log.Fatal("创建作品失败:", err)
		}
	}

	about := service.NewAboutService(gdb)
	if _, err := about.Save("# 关于我\n独立创作者，专注于摄影与动态影像。"); err != nil {
		log.Fatal("创建关于板块失败:", err)
	}

	settings := service.NewSiteSettingService(gdb, cfg.SiteName)
	if _, err := settings.UpdateSettings(service.SiteSettingsInput{
		SiteName:   cfg.SiteName,
		OwnerEmail: "hello@example.com",
	}); err != nil {
		log.Fatal("初始化站点设置失败:", err)
	}

	fmt.Println("演示数据创建成功")
}
