package types

import "time"

// 回帖请求
type AddPostRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

// 编辑帖子请求
type EditPostRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

type PostItem struct {
	ID          int64      `json:"id"`
	TopicID     int64      `json:"topic_id"`
	UserID      int64      `json:"user_id"`
	Body        string     `json:"body"`
	Rating      int64      `json:"rating"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	UpdatedByID *int64     `json:"updated_by_id,omitempty"`
}

// 回帖表单上下文
type AddPostContext struct {
	Topic TopicBrief `json:"topic"`
}

// 编辑页上下文：帖子当前内容
type EditPostContext struct {
	Post  PostItem   `json:"post"`
	Topic TopicBrief `json:"topic"`
}
