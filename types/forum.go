package types

import "time"

type ForumBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TopicCount  int64  `json:"topic_count"`
	PostCount   int64  `json:"post_count"`
}

type CategoryBlock struct {
	ID     int64        `json:"id"`
	Name   string       `json:"name"`
	Forums []ForumBrief `json:"forums"`
}

// 首页：分类列表 + 在线情况 + 全局计数
type IndexResponse struct {
	Categories  []CategoryBlock `json:"categories"`
	UsersOnline []UserBrief     `json:"users_online"`
	OnlineCount int             `json:"online_count"`
	GuestCount  int             `json:"guest_count"`
	UsersCount  int64           `json:"users_count"`
	TopicsCount int64           `json:"topics_count"`
	PostsCount  int64           `json:"posts_count"`
}

type TopicBrief struct {
	ID         int64     `json:"id"`
	ForumID    int64     `json:"forum_id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	Views      int64     `json:"views"`
	Heresy     bool      `json:"heresy"`
	Closed     bool      `json:"closed"`
	Sticky     bool      `json:"sticky"`
	Rating     int64     `json:"rating"`
	PostCount  int64     `json:"post_count"`
	LastPostAt time.Time `json:"last_post_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// 版块页：分页主题列表
type ForumPageResponse struct {
	Forum  ForumBrief   `json:"forum"`
	Topics []TopicBrief `json:"topics"`
	Page   Page         `json:"page"`
}

// 未读/我的主题列表
type TopicListResponse struct {
	Topics []TopicBrief `json:"topics"`
	Page   Page         `json:"page"`
}
