package types

// 发新主题请求，标题加首帖正文
type AddTopicRequest struct {
	Title string `json:"title" binding:"required,min=3,max=255"`
	Body  string `json:"body" binding:"required,min=1"`
}

// 移动主题请求
type MoveTopicRequest struct {
	ForumID int64 `json:"forum_id,string" binding:"required"`
}

// 主题页：主题详情 + 分页帖子 + 当前用户能否回帖
type TopicPageResponse struct {
	Topic   TopicBrief `json:"topic"`
	Forum   ForumBrief `json:"forum"`
	Posts   []PostItem `json:"posts"`
	CanPost bool       `json:"can_post"`
	Page    Page       `json:"page"`
}

// 移动主题表单上下文
type MoveTopicFormResponse struct {
	Topic TopicBrief `json:"topic"`
	Forum ForumBrief `json:"forum"`
}

// 写操作统一回执：跳转目标 + 可选的提示消息
// 权限不足但不算硬错误的场景（发帖权限）用 message 提示后跳回
type ActionResponse struct {
	Redirect string `json:"redirect"`
	Message  string `json:"message,omitempty"`
}

// 标记切换回执
type ToggleResponse struct {
	Redirect string `json:"redirect"`
	Value    bool   `json:"value"`
}
