package models

import "time"

// 版块访问级别
// perms 只用列值表达，未读查询要能直接落到 SQL 条件上
const (
	PermsPublic     int8 = 0 // 所有人可见
	PermsRegistered int8 = 1 // 仅登录用户可见
	PermsPrivate    int8 = 2 // 仅版主可见
)

// Forum 版块表
type Forum struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CategoryID  int64  `gorm:"index;not null" json:"category_id"`
	Name        string `gorm:"type:varchar(64);not null" json:"name"`
	Description string `gorm:"type:varchar(255);default:''" json:"description"`
	Position    int32  `gorm:"default:0;index" json:"position"`
	Perms       int8   `gorm:"type:tinyint;default:0" json:"perms"`

	TopicCount int64 `gorm:"default:0" json:"topic_count"`
	PostCount  int64 `gorm:"default:0" json:"post_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Forum) TableName() string {
	return "forums"
}

// HasAccess 可见性校验，失败时对外表现为"不存在"
func (f *Forum) HasAccess(u *Users) bool {
	switch f.Perms {
	case PermsPublic:
		return true
	case PermsRegistered:
		return u != nil
	case PermsPrivate:
		return u != nil && u.IsModerator
	default:
		return false
	}
}

// CanPost 发帖权限，区别于可见性（游客可能只读）
func (f *Forum) CanPost(u *Users) bool {
	if u == nil || !u.IsActive {
		return false
	}
	return f.HasAccess(u)
}

// MaxPerms 该用户可见的最大访问级别，未读查询等 SQL 过滤直接使用
func MaxPerms(u *Users) int8 {
	if u == nil {
		return PermsPublic
	}
	if u.IsModerator {
		return PermsPrivate
	}
	return PermsRegistered
}
