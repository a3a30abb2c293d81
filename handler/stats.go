package handler

import (
	"Tribune/config"
	"Tribune/pkg/context"
	"Tribune/pkg/response"
	"Tribune/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	Config       *config.Config
	StatsService service.IStatsService
}

func (h *Stats) RegisterRouter(r gin.IRouter) {
	forum := r.Group("/v1/forum")
	forum.GET("/statistic", context.Wrap(h.Statistic))
	forum.GET("/statistic/chart", context.Wrap(h.Chart))
}

// Statistic 统计报表
func (h *Stats) Statistic(c *gin.Context) error {
	resp, err := h.StatsService.Statistic(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Chart 按月发帖柱状图，直接输出 SVG
func (h *Stats) Chart(c *gin.Context) error {
	svg, err := h.StatsService.PostsPerMonthChart(c.Request.Context())
	if err != nil {
		return err
	}
	c.Data(http.StatusOK, "image/svg+xml", svg)
	return nil
}
