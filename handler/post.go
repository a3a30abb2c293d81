package handler

import (
	"Tribune/config"
	"Tribune/middleware"
	"Tribune/pkg/context"
	"Tribune/pkg/response"
	"Tribune/service"
	"Tribune/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config      *config.Config
	PostService service.IPostService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	forum := r.Group("/v1/forum")

	forum.GET("/topics/:id/add-post", authorize, context.Wrap(h.AddPostForm))
	forum.POST("/topics/:id/add-post", authorize, context.Wrap(h.AddPost))
	forum.GET("/posts/:id/edit", authorize, context.Wrap(h.EditPostForm))
	forum.POST("/posts/:id/edit", authorize, context.Wrap(h.EditPost))
	forum.POST("/posts/:id/delete", authorize, context.Wrap(h.DeletePost))
}

// AddPostForm 回帖表单上下文
func (h *Post) AddPostForm(c *gin.Context) error {
	topicID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	form, deny, err := h.PostService.AddPostForm(c.Request.Context(), context.GetUserID(c), topicID)
	if err != nil {
		return err
	}
	if deny != nil {
		response.Success(c, deny)
		return nil
	}
	response.Success(c, form)
	return nil
}

// AddPost 回帖
func (h *Post) AddPost(c *gin.Context) error {
	topicID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.AddPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.PostService.AddPost(c.Request.Context(), context.GetUserID(c), topicID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// EditPostForm 编辑表单上下文（帖子当前正文）
func (h *Post) EditPostForm(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	form, deny, err := h.PostService.EditPostForm(c.Request.Context(), context.GetUserID(c), postID)
	if err != nil {
		return err
	}
	if deny != nil {
		response.Success(c, deny)
		return nil
	}
	response.Success(c, form)
	return nil
}

// EditPost 保存编辑
func (h *Post) EditPost(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.PostService.EditPost(c.Request.Context(), context.GetUserID(c), postID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// DeletePost 删帖，主题已不存在时跳回版块
func (h *Post) DeletePost(c *gin.Context) error {
	postID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.PostService.DeletePost(c.Request.Context(), context.GetUserID(c), postID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
