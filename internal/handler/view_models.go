package handler

import (
	"html/template"

	"github.com/portfolio/internal/db"
)

// 每个页面使用独立的视图模型，模板消费的字段由此静态可查，
// 不再通过 gin.H 做动态查找。

// SiteView 收集所有页面共用的站点信息。
type SiteView struct {
	Name       string
	OwnerEmail string
	Year       int
}

// WorkView 描述作品在首页上的展示数据。
type WorkView struct {
	ID            uint
	Title         string
	Description   string
	ImageURL      string
	ImageWidth    int
	ImageHeight   int
	VideoFileURL  string
	VideoEmbedURL string
	VideoAspect   string
}

// HomeView 是首页模板的数据模型。
type HomeView struct {
	Site     SiteView
	Works    []WorkView
	About    template.HTML
	HasAbout bool
	Error    string
}

// AboutView 是关于页模板的数据模型。
type AboutView struct {
	Site       SiteView
	Content    template.HTML
	HasContent bool
	Error      string
}

// ContactView 是联系页模板的数据模型。
type ContactView struct {
	Site    SiteView
	Flash   string
	Error   string
	Name    string
	Email   string
	Message string
}

func (a *API) buildWorkView(work db.Work) WorkView {
	view := WorkView{
		ID:          work.ID,
		Title:       work.Title,
		Description: work.Description,
		ImageURL:    a.mediaFileURL(work.ImagePath),
		ImageWidth:  work.ImageWidth,
		ImageHeight: work.ImageHeight,
	}

	video := a.resolveWorkVideo(work.VideoURL)
	view.VideoFileURL = video.FileURL
	view.VideoEmbedURL = video.EmbedURL
	view.VideoAspect = video.Aspect

	return view
}
