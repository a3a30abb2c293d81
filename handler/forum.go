package handler

import (
	"Tribune/config"
	"Tribune/middleware"
	"Tribune/pkg/context"
	"Tribune/pkg/response"
	"Tribune/service"
	"Tribune/types"
	"fmt"

	"github.com/gin-gonic/gin"
)

type Forum struct {
	Config       *config.Config
	ForumService service.IForumService
	ReadService  service.IReadService
}

func (h *Forum) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	forum := r.Group("/v1/forum")
	forum.GET("", context.Wrap(h.Index))
	forum.GET("/forums/:id", context.Wrap(h.ForumPage))
	forum.GET("/unread", authorize, context.Wrap(h.Unread))
	forum.POST("/mark-read", authorize, context.Wrap(h.MarkReadAll))
	forum.POST("/forums/:id/mark-read", authorize, context.Wrap(h.MarkReadForum))
}

// Index 首页：分类列表 + 在线情况 + 全局计数
func (h *Forum) Index(c *gin.Context) error {
	resp, err := h.ForumService.Index(c.Request.Context(), context.GetUserID(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// ForumPage 版块主题分页列表
func (h *Forum) ForumPage(c *gin.Context) error {
	forumID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.ForumService.ForumPage(c.Request.Context(), context.GetUserID(c), forumID, queryPage(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Unread 未读主题分页列表
func (h *Forum) Unread(c *gin.Context) error {
	resp, err := h.ReadService.Unread(c.Request.Context(), context.GetUserID(c), queryPage(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// MarkReadAll 全站标记已读后跳回首页
func (h *Forum) MarkReadAll(c *gin.Context) error {
	if err := h.ReadService.MarkReadAll(c.Request.Context(), context.GetUserID(c)); err != nil {
		return err
	}
	response.Success(c, types.ActionResponse{Redirect: "/"})
	return nil
}

// MarkReadForum 单版块标记已读后跳回版块
func (h *Forum) MarkReadForum(c *gin.Context) error {
	forumID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ReadService.MarkReadForum(c.Request.Context(), context.GetUserID(c), forumID); err != nil {
		return err
	}
	response.Success(c, types.ActionResponse{Redirect: fmt.Sprintf("/forums/%d", forumID)})
	return nil
}
