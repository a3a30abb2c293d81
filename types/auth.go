package types

// 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

// 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserBrief struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsModerator bool   `json:"is_moderator"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	User  UserBrief `json:"user"`
}
