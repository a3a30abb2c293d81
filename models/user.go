package models

import "time"

// Users 用户表
type Users struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username     string `gorm:"type:varchar(32);uniqueIndex:uk_users_username;not null" json:"username"`
	Email        string `gorm:"type:varchar(128);default:''" json:"email"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"`

	// 邮箱已验证等，未激活用户只能浏览不能发帖
	IsActive bool `gorm:"default:true" json:"is_active"`
	// 版主：可编辑/关闭/置顶/删除任意主题与帖子
	IsModerator bool `gorm:"default:false" json:"is_moderator"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
