package handler

import (
	"Tribune/config"
	"Tribune/middleware"
	"Tribune/models"
	"Tribune/pkg/context"
	"Tribune/pkg/response"
	"Tribune/service"
	"Tribune/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Topic struct {
	Config       *config.Config
	TopicService service.ITopicService
}

func (h *Topic) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	forum := r.Group("/v1/forum")

	forum.GET("/topics/:id", context.Wrap(h.TopicPage))
	forum.GET("/my-topics", authorize, context.Wrap(h.MyTopics))

	forum.GET("/forums/:id/add-topic", authorize, context.Wrap(h.AddTopicForm))
	forum.POST("/forums/:id/add-topic", authorize, context.Wrap(h.AddTopic))

	forum.GET("/topics/:id/move", authorize, context.Wrap(h.MoveTopicForm))
	forum.POST("/topics/:id/move", authorize, context.Wrap(h.MoveTopic))

	forum.POST("/topics/:id/subscribe", authorize, context.Wrap(h.Subscribe))
	forum.POST("/topics/:id/unsubscribe", authorize, context.Wrap(h.Unsubscribe))

	// 三个标记共用一个开关操作，路由只决定标记名
	forum.POST("/topics/:id/heresy", authorize, context.Wrap(h.toggle(models.FlagHeresy)))
	forum.POST("/topics/:id/close", authorize, context.Wrap(h.toggle(models.FlagClosed)))
	forum.POST("/topics/:id/stick", authorize, context.Wrap(h.toggle(models.FlagSticky)))

	// 删除只在 POST 上生效
	forum.POST("/topics/:id/delete", authorize, context.Wrap(h.DeleteTopic))
}

// TopicPage 主题页：帖子分页 + 浏览计数 + 阅读标记
func (h *Topic) TopicPage(c *gin.Context) error {
	topicID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.TopicService.TopicPage(c.Request.Context(), context.GetUserID(c), topicID, queryPage(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// MyTopics 我发布的主题
func (h *Topic) MyTopics(c *gin.Context) error {
	resp, err := h.TopicService.MyTopics(c.Request.Context(), context.GetUserID(c), queryPage(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// AddTopicForm 发主题表单上下文
func (h *Topic) AddTopicForm(c *gin.Context) error {
	forumID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	forum, deny, err := h.TopicService.AddTopicForm(c.Request.Context(), context.GetUserID(c), forumID)
	if err != nil {
		return err
	}
	if deny != nil {
		response.Success(c, deny)
		return nil
	}
	response.Success(c, forum)
	return nil
}

// AddTopic 发新主题
func (h *Topic) AddTopic(c *gin.Context) error {
	forumID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.AddTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.TopicService.AddTopic(c.Request.Context(), context.GetUserID(c), forumID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// MoveTopicForm 移动主题表单上下文
func (h *Topic) MoveTopicForm(c *gin.Context) error {
	topicID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.TopicService.MoveTopicForm(c.Request.Context(), context.GetUserID(c), topicID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// MoveTopic 移动主题到别的版块
func (h *Topic) MoveTopic(c *gin.Context) error {
	topicID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.MoveTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.TopicService.MoveTopic(c.Request.Context(), context.GetUserID(c), topicID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Topic) Subscribe(c *gin.Context) error {
	return h.setSubscription(c, true)
}

func (h *Topic) Unsubscribe(c *gin.Context) error {
	return h.setSubscription(c, false)
}

func (h *Topic) setSubscription(c *gin.Context, subscribed bool) error {
	topicID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.TopicService.SetSubscription(c.Request.Context(), context.GetUserID(c), topicID, subscribed)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Topic) toggle(flag string) context.HandlerFunc {
	return func(c *gin.Context) error {
		topicID, err := paramID(c, "id")
		if err != nil {
			return err
		}
		resp, err := h.TopicService.ToggleFlag(c.Request.Context(), context.GetUserID(c), topicID, flag)
		if err != nil {
			return err
		}
		response.Success(c, resp)
		return nil
	}
}

// DeleteTopic 删除主题并跳回版块
func (h *Topic) DeleteTopic(c *gin.Context) error {
	topicID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.TopicService.DeleteTopic(c.Request.Context(), context.GetUserID(c), topicID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
