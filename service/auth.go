package service

import (
	"Tribune/config"
	"Tribune/dao"
	"Tribune/models"
	"Tribune/pkg/jwt"
	"Tribune/pkg/response"
	"Tribune/pkg/snowflake"
	"Tribune/types"
	"context"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	CurrentUser(ctx context.Context, userID int64) (*models.Users, error)
}

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.Users
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.BadRequest("用户名已被占用")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		ID:           snowflake.GenID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}

	return s.issueToken(user)
}

// CurrentUser 加载当前用户，userID 为 0（游客）或用户不存在时返回 nil
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.Users, error) {
	if userID <= 0 {
		return nil, nil
	}
	return s.UserDAO.FindById(ctx, userID)
}

func (s *AuthService) issueToken(user *models.Users) (*types.AuthResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresSeconds) * time.Second
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Username, "access", expire)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		Token: token,
		User: types.UserBrief{
			ID:          user.ID,
			Username:    user.Username,
			IsModerator: user.IsModerator,
		},
	}, nil
}
