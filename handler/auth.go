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

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	auth := r.Group("/v1/auth")
	auth.POST("/register", context.Wrap(h.Register))
	auth.POST("/login", context.Wrap(h.Login))
	auth.GET("/me", authorize, context.Wrap(h.Me))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Auth) Me(c *gin.Context) error {
	user, err := h.AuthService.CurrentUser(c.Request.Context(), context.GetUserID(c))
	if err != nil {
		return err
	}
	if user == nil {
		return response.Unauthorized("请先登录")
	}
	response.Success(c, types.UserBrief{
		ID:          user.ID,
		Username:    user.Username,
		IsModerator: user.IsModerator,
	})
	return nil
}
