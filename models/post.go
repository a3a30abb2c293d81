package models

import "time"

// Post 帖子表
type Post struct {
	ID      int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TopicID int64  `gorm:"index;not null" json:"topic_id"`
	UserID  int64  `gorm:"index;not null" json:"user_id"`
	Body    string `gorm:"type:text;not null" json:"body"`

	// 由投票关系重算出的评分
	Rating int64 `gorm:"default:0" json:"rating"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// 仅编辑时写入，关掉 gorm 对 UpdatedAt 的自动盖章
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
	UpdatedByID *int64     `json:"updated_by_id,omitempty"`

	Topic *Topic `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

// HasAccess 委托给所属主题，调用前需预加载 Topic.Forum
func (p *Post) HasAccess(u *Users) bool {
	if p.Topic == nil {
		return false
	}
	return p.Topic.HasAccess(u)
}

// CanEdit 作者或版主
func (p *Post) CanEdit(u *Users) bool {
	if u == nil {
		return false
	}
	return u.IsModerator || u.ID == p.UserID
}

// CanDelete 仅版主
func (p *Post) CanDelete(u *Users) bool {
	return u != nil && u.IsModerator
}
