package models

import "time"

// 可切换的主题标记列，三个标记互相独立
const (
	FlagHeresy = "heresy"
	FlagClosed = "closed"
	FlagSticky = "sticky"
)

// Topic 主题表
type Topic struct {
	ID      int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ForumID int64  `gorm:"index;not null" json:"forum_id"`
	UserID  int64  `gorm:"index;not null" json:"user_id"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`

	// 浏览计数，只增不减，每次渲染主题页 +1
	Views int64 `gorm:"default:0" json:"views"`

	Heresy bool `gorm:"default:false" json:"heresy"`
	Closed bool `gorm:"default:false" json:"closed"`
	Sticky bool `gorm:"default:false;index" json:"sticky"`

	// 主题作者是否订阅回帖通知
	SendResponse bool `gorm:"default:false" json:"send_response"`

	// 由投票关系重算出的评分
	Rating int64 `gorm:"default:0" json:"rating"`

	PostCount  int64     `gorm:"default:0" json:"post_count"`
	LastPostAt time.Time `gorm:"index" json:"last_post_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Forum *Forum `gorm:"foreignKey:ForumID" json:"forum,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// HasAccess 委托给所属版块，调用前需预加载 Forum
func (t *Topic) HasAccess(u *Users) bool {
	if t.Forum == nil {
		return false
	}
	return t.Forum.HasAccess(u)
}

// CanPost 已关闭的主题只有版主能继续回帖
func (t *Topic) CanPost(u *Users) bool {
	if t.Forum == nil || !t.Forum.CanPost(u) {
		return false
	}
	if t.Closed {
		return u.IsModerator
	}
	return true
}

// CanEdit 移动/关闭/置顶/异端标记，仅版主
func (t *Topic) CanEdit(u *Users) bool {
	return u != nil && u.IsModerator
}

// CanDelete 删除级联到全部帖子，仅版主
func (t *Topic) CanDelete(u *Users) bool {
	return u != nil && u.IsModerator
}
