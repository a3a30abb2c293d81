package handler

import (
	"Tribune/config"
	"Tribune/pkg/context"
	"Tribune/pkg/response"
	"Tribune/service"

	"github.com/gin-gonic/gin"
)

type Vote struct {
	Config      *config.Config
	VoteService service.IVoteService
}

func (h *Vote) RegisterRouter(r gin.IRouter) {
	forum := r.Group("/v1/forum")
	// 匿名请求由 service 层拒绝（403），这里不挂强制登录
	forum.POST("/vote/:type/:id", context.Wrap(h.Vote))
}

// Vote 投票开关，返回新评分和当前用户投票状态
func (h *Vote) Vote(c *gin.Context) error {
	votableID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.VoteService.Vote(c.Request.Context(), context.GetUserID(c), c.Param("type"), votableID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
