package service

import (
	"Tribune/dao"
	"Tribune/models"
	"Tribune/pkg/response"
	"Tribune/pkg/snowflake"
	"Tribune/types"
	"context"
	"fmt"
	"time"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	AddPostForm(ctx context.Context, userID, topicID int64) (*types.AddPostContext, *types.ActionResponse, error)
	AddPost(ctx context.Context, userID, topicID int64, req *types.AddPostRequest) (*types.ActionResponse, error)
	EditPostForm(ctx context.Context, userID, postID int64) (*types.EditPostContext, *types.ActionResponse, error)
	EditPost(ctx context.Context, userID, postID int64, req *types.EditPostRequest) (*types.ActionResponse, error)
	DeletePost(ctx context.Context, userID, postID int64) (*types.ActionResponse, error)
}

type PostService struct {
	TopicDAO    *dao.Topic
	PostDAO     *dao.Post
	AuthService IAuthService
}

// AddPostForm 回帖表单上下文
func (s *PostService) AddPostForm(ctx context.Context, userID, topicID int64) (*types.AddPostContext, *types.ActionResponse, error) {
	topic, deny, err := s.postableTopic(ctx, userID, topicID)
	if err != nil {
		return nil, nil, err
	}
	if deny != nil {
		return nil, deny, nil
	}
	return &types.AddPostContext{Topic: toTopicBrief(topic)}, nil, nil
}

// AddPost 回帖
func (s *PostService) AddPost(ctx context.Context, userID, topicID int64, req *types.AddPostRequest) (*types.ActionResponse, error) {
	topic, deny, err := s.postableTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}
	if deny != nil {
		return deny, nil
	}

	post := &models.Post{
		ID:        snowflake.GenID(),
		TopicID:   topic.ID,
		UserID:    userID,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := s.PostDAO.CreateInTopic(ctx, post, topic.ForumID); err != nil {
		return nil, err
	}

	return &types.ActionResponse{Redirect: postRedirect(topic.ID, post.ID)}, nil
}

// EditPostForm 编辑表单上下文：帖子当前正文
// 无编辑权限给提示消息并跳回主题
func (s *PostService) EditPostForm(ctx context.Context, userID, postID int64) (*types.EditPostContext, *types.ActionResponse, error) {
	_, post, deny, err := s.editablePost(ctx, userID, postID)
	if err != nil {
		return nil, nil, err
	}
	if deny != nil {
		return nil, deny, nil
	}

	return &types.EditPostContext{
		Post:  toPostItem(post),
		Topic: toTopicBrief(post.Topic),
	}, nil, nil
}

// EditPost 保存编辑，盖上编辑时间和编辑人
func (s *PostService) EditPost(ctx context.Context, userID, postID int64, req *types.EditPostRequest) (*types.ActionResponse, error) {
	user, post, deny, err := s.editablePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if deny != nil {
		return deny, nil
	}

	if err := s.PostDAO.Edit(ctx, post.ID, req.Body, user.ID, time.Now()); err != nil {
		return nil, err
	}
	return &types.ActionResponse{Redirect: postRedirect(post.TopicID, post.ID)}, nil
}

// DeletePost 删帖
// 所属主题若已被并发删除，跳回帖子所在版块而不是报错
func (s *PostService) DeletePost(ctx context.Context, userID, postID int64) (*types.ActionResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, err := s.PostDAO.FindByIdWithTopic(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.HasAccess(user) {
		return nil, response.NotFound("帖子不存在")
	}
	if !post.CanDelete(user) {
		return nil, response.Forbidden("没有删除权限")
	}

	forumID := post.Topic.ForumID
	if err := s.PostDAO.DeleteWithCounters(ctx, post, forumID); err != nil {
		return nil, err
	}

	// 主题可能已被并发删除，删帖后重新确认
	topic, err := s.TopicDAO.FindById(ctx, post.TopicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return &types.ActionResponse{Redirect: forumRedirect(forumID)}, nil
	}
	return &types.ActionResponse{Redirect: topicRedirect(topic.ID)}, nil
}

// postableTopic 取主题并做可见性+回帖权限校验
// 主题不可见按不存在处理；无回帖权限（含已关闭主题）提示后跳回主题
func (s *PostService) postableTopic(ctx context.Context, userID, topicID int64) (*models.Topic, *types.ActionResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	topic, err := s.TopicDAO.FindByIdWithForum(ctx, topicID)
	if err != nil {
		return nil, nil, err
	}
	if topic == nil || !topic.HasAccess(user) {
		return nil, nil, response.NotFound("主题不存在")
	}
	if !topic.CanPost(user) {
		return nil, &types.ActionResponse{
			Redirect: topicRedirect(topic.ID),
			Message:  "没有回帖的权限",
		}, nil
	}
	return topic, nil, nil
}

// editablePost 取帖子并做可见性+编辑权限校验
func (s *PostService) editablePost(ctx context.Context, userID, postID int64) (*models.Users, *models.Post, *types.ActionResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	post, err := s.PostDAO.FindByIdWithTopic(ctx, postID)
	if err != nil {
		return nil, nil, nil, err
	}
	if post == nil || !post.HasAccess(user) {
		return nil, nil, nil, response.NotFound("帖子不存在")
	}
	if !post.CanEdit(user) {
		return user, post, &types.ActionResponse{
			Redirect: topicRedirect(post.TopicID),
			Message:  "没有编辑这个帖子的权限",
		}, nil
	}
	return user, post, nil, nil
}

func postRedirect(topicID, postID int64) string {
	return fmt.Sprintf("/topics/%d#post-%d", topicID, postID)
}
