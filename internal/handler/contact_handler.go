package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// ShowContact renders the contact form, with the flash left by a
// previous successful submission if any.
func (a *API) ShowContact(c *gin.Context) {
	view := ContactView{Site: a.siteView(c)}

	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		if message, ok := flashes[0].(string); ok {
			view.Flash = message
		}
		// Flashes 读取后需要保存会话才会真正清除
		if err := session.Save(); err != nil {
			c.Error(err)
		}
	}

	c.HTML(http.StatusOK, "contact.html", view)
}

// SubmitContact 保存访客留言，成功后重定向回表单页展示回执。
func (a *API) SubmitContact(c *gin.Context) {
	site := a.siteView(c)

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "contact.html", ContactView{
			Site:  site,
			Error: "表单数据格式不正确",
		})
		return
	}

	message, err := a.contacts.Create(service.ContactInput{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactInvalidInput) {
			c.HTML(http.StatusBadRequest, "contact.html", ContactView{
				Site:    site,
				Error:   "请填写姓名、有效的邮箱和留言内容",
				Name:    form.Name,
				Email:   form.Email,
				Message: form.Message,
			})
			return
		}
		c.HTML(http.StatusInternalServerError, "contact.html", ContactView{
			Site:  site,
			Error: "留言保存失败，请稍后再试",
		})
		return
	}

	session := sessions.Default(c)
	session.AddFlash(fmt.Sprintf("留言已发送，回执编号 %s", message.Reference))
	if err := session.Save(); err != nil {
		c.Error(err)
	}

	c.Redirect(http.StatusFound, "/contact/")
}
