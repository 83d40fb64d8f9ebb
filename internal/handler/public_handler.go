package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/portfolio/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// ShowHome renders the public home page with the works list and the
// optional about section.
func (a *API) ShowHome(c *gin.Context) {
	site := a.siteView(c)

	works, err := a.works.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "work.html", HomeView{
			Site:  site,
			Error: "加载作品列表失败，请稍后再试",
		})
		return
	}

	view := HomeView{
		Site:  site,
		Works: make([]WorkView, 0, len(works)),
	}
	for _, work := range works {
		view.Works = append(view.Works, a.buildWorkView(work))
	}

	section, err := a.about.Get()
	switch {
	case err == nil:
		if content, mdErr := renderMarkdown(section.Content); mdErr == nil {
			view.About = content
			view.HasAbout = true
		}
	case errors.Is(err, service.ErrAboutNotFound):
		// 没有关于板块时正常渲染，省略该区域
	default:
		c.HTML(http.StatusInternalServerError, "work.html", HomeView{
			Site:  site,
			Error: "加载页面数据失败，请稍后再试",
		})
		return
	}

	c.HTML(http.StatusOK, "work.html", view)
}

// ShowAbout renders the about page.
func (a *API) ShowAbout(c *gin.Context) {
	site := a.siteView(c)

	section, err := a.about.Get()
	if err != nil {
		if errors.Is(err, service.ErrAboutNotFound) {
			c.HTML(http.StatusOK, "about.html", AboutView{Site: site})
			return
		}
		c.HTML(http.StatusInternalServerError, "about.html", AboutView{
			Site:  site,
			Error: "加载关于页面失败，请稍后再试",
		})
		return
	}

	content, err := renderMarkdown(section.Content)
	if err != nil {
		content = template.HTML("<p class=\"text-sm text-slate-600\">内容暂时无法展示。</p>")
	}

	c.HTML(http.StatusOK, "about.html", AboutView{
		Site:       site,
		Content:    content,
		HasContent: true,
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
