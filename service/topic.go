package service

import (
	"Tribune/config"
	"Tribune/dao"
	"Tribune/models"
	"Tribune/pkg/response"
	"Tribune/pkg/snowflake"
	"Tribune/types"
	"context"
	"fmt"
	"time"
)

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	TopicPage(ctx context.Context, userID, topicID int64, page int) (*types.TopicPageResponse, error)
	MyTopics(ctx context.Context, userID int64, page int) (*types.TopicListResponse, error)
	AddTopicForm(ctx context.Context, userID, forumID int64) (*types.ForumBrief, *types.ActionResponse, error)
	AddTopic(ctx context.Context, userID, forumID int64, req *types.AddTopicRequest) (*types.ActionResponse, error)
	MoveTopicForm(ctx context.Context, userID, topicID int64) (*types.MoveTopicFormResponse, error)
	MoveTopic(ctx context.Context, userID, topicID int64, req *types.MoveTopicRequest) (*types.ActionResponse, error)
	SetSubscription(ctx context.Context, userID, topicID int64, subscribed bool) (*types.ActionResponse, error)
	ToggleFlag(ctx context.Context, userID, topicID int64, flag string) (*types.ToggleResponse, error)
	DeleteTopic(ctx context.Context, userID, topicID int64) (*types.ActionResponse, error)
}

type TopicService struct {
	Config      *config.Config
	ForumDAO    *dao.Forum
	TopicDAO    *dao.Topic
	PostDAO     *dao.Post
	AuthService IAuthService
	ReadService IReadService
}

// TopicPage 主题页：原子递增浏览数、盖阅读标记、返回分页帖子
func (s *TopicService) TopicPage(ctx context.Context, userID, topicID int64, page int) (*types.TopicPageResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	topic, err := s.visibleTopic(ctx, topicID, user)
	if err != nil {
		return nil, err
	}

	if err := s.TopicDAO.IncrViews(ctx, topic.ID); err != nil {
		return nil, err
	}
	topic.Views++

	// 阅读跟踪归属 ReadService，游客由它内部跳过
	if err := s.ReadService.MarkVisited(ctx, userID, topic.ID); err != nil {
		return nil, err
	}

	perPage := s.Config.Forum.PostsOnPage
	if page < 1 {
		page = 1
	}
	posts, total, err := s.PostDAO.ListByTopic(ctx, topic.ID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	items := make([]types.PostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostItem(p))
	}

	return &types.TopicPageResponse{
		Topic:   toTopicBrief(topic),
		Forum:   toForumBrief(topic.Forum),
		Posts:   items,
		CanPost: topic.CanPost(user),
		Page:    types.NewPage(page, perPage, total),
	}, nil
}

// MyTopics 当前用户自己的主题
func (s *TopicService) MyTopics(ctx context.Context, userID int64, page int) (*types.TopicListResponse, error) {
	perPage := s.Config.Forum.TopicsOnPage
	if page < 1 {
		page = 1
	}
	topics, total, err := s.TopicDAO.ListByUser(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	return &types.TopicListResponse{
		Topics: toTopicBriefs(topics),
		Page:   types.NewPage(page, perPage, total),
	}, nil
}

// AddTopicForm 发主题表单上下文
// 版块不可见按不存在处理；无发帖权限给提示消息并跳回版块
func (s *TopicService) AddTopicForm(ctx context.Context, userID, forumID int64) (*types.ForumBrief, *types.ActionResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	forum, err := s.ForumDAO.FindById(ctx, forumID)
	if err != nil {
		return nil, nil, err
	}
	if forum == nil || !forum.HasAccess(user) {
		return nil, nil, response.NotFound("版块不存在")
	}
	if !forum.CanPost(user) {
		return nil, &types.ActionResponse{
			Redirect: forumRedirect(forum.ID),
			Message:  "没有发主题的权限，可能需要先验证邮箱",
		}, nil
	}
	brief := toForumBrief(forum)
	return &brief, nil, nil
}

// AddTopic 发新主题（标题 + 首帖）
func (s *TopicService) AddTopic(ctx context.Context, userID, forumID int64, req *types.AddTopicRequest) (*types.ActionResponse, error) {
	_, deny, err := s.AddTopicForm(ctx, userID, forumID)
	if err != nil {
		return nil, err
	}
	if deny != nil {
		return deny, nil
	}

	now := time.Now()
	topic := &models.Topic{
		ID:         snowflake.GenID(),
		ForumID:    forumID,
		UserID:     userID,
		Title:      req.Title,
		LastPostAt: now,
	}
	post := &models.Post{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Body:      req.Body,
		CreatedAt: now,
	}
	if err := s.TopicDAO.CreateWithFirstPost(ctx, topic, post); err != nil {
		return nil, err
	}

	return &types.ActionResponse{Redirect: topicRedirect(topic.ID)}, nil
}

// MoveTopicForm 移动主题表单上下文，无编辑权限按不存在处理
func (s *TopicService) MoveTopicForm(ctx context.Context, userID, topicID int64) (*types.MoveTopicFormResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	topic, err := s.visibleTopic(ctx, topicID, user)
	if err != nil {
		return nil, err
	}
	if !topic.CanEdit(user) {
		return nil, response.NotFound("主题不存在")
	}
	return &types.MoveTopicFormResponse{
		Topic: toTopicBrief(topic),
		Forum: toForumBrief(topic.Forum),
	}, nil
}

// MoveTopic 把主题移动到另一个版块
func (s *TopicService) MoveTopic(ctx context.Context, userID, topicID int64, req *types.MoveTopicRequest) (*types.ActionResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	topic, err := s.visibleTopic(ctx, topicID, user)
	if err != nil {
		return nil, err
	}
	if !topic.CanEdit(user) {
		return nil, response.NotFound("主题不存在")
	}

	dest, err := s.ForumDAO.FindById(ctx, req.ForumID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, response.BadRequest("目标版块不存在")
	}

	if err := s.TopicDAO.Move(ctx, topic, dest.ID); err != nil {
		return nil, err
	}
	return &types.ActionResponse{Redirect: topicRedirect(topic.ID)}, nil
}

// SetSubscription 订阅/退订回帖通知，只能操作自己的主题
func (s *TopicService) SetSubscription(ctx context.Context, userID, topicID int64, subscribed bool) (*types.ActionResponse, error) {
	topic, err := s.TopicDAO.FindOwn(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, response.NotFound("主题不存在")
	}
	if err := s.TopicDAO.SetSendResponse(ctx, topic.ID, subscribed); err != nil {
		return nil, err
	}
	return &types.ActionResponse{Redirect: topicRedirect(topic.ID)}, nil
}

// ToggleFlag 切换 heresy/closed/sticky 之一
// 三个标记共用这一条带权限门的通用开关，不各写一份
func (s *TopicService) ToggleFlag(ctx context.Context, userID, topicID int64, flag string) (*types.ToggleResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	topic, err := s.visibleTopic(ctx, topicID, user)
	if err != nil {
		return nil, err
	}
	if !topic.CanEdit(user) {
		return nil, response.Forbidden("没有操作权限")
	}

	value, err := s.TopicDAO.ToggleFlag(ctx, topic.ID, flag)
	if err != nil {
		return nil, err
	}
	return &types.ToggleResponse{
		Redirect: topicRedirect(topic.ID),
		Value:    value,
	}, nil
}

// DeleteTopic 删除主题，级联删除其帖子，跳回所在版块
func (s *TopicService) DeleteTopic(ctx context.Context, userID, topicID int64) (*types.ActionResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	topic, err := s.visibleTopic(ctx, topicID, user)
	if err != nil {
		return nil, err
	}
	if !topic.CanDelete(user) {
		return nil, response.Forbidden("没有删除权限")
	}

	if err := s.TopicDAO.DeleteCascade(ctx, topic); err != nil {
		return nil, err
	}
	return &types.ActionResponse{Redirect: forumRedirect(topic.ForumID)}, nil
}

// visibleTopic 取主题并校验可见性，失败一律 404
func (s *TopicService) visibleTopic(ctx context.Context, topicID int64, user *models.Users) (*models.Topic, error) {
	topic, err := s.TopicDAO.FindByIdWithForum(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil || !topic.HasAccess(user) {
		return nil, response.NotFound("主题不存在")
	}
	return topic, nil
}

func topicRedirect(topicID int64) string {
	return fmt.Sprintf("/topics/%d", topicID)
}

func forumRedirect(forumID int64) string {
	return fmt.Sprintf("/forums/%d", forumID)
}
