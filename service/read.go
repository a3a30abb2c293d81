package service

import (
	"Tribune/config"
	"Tribune/dao"
	"Tribune/pkg/response"
	"Tribune/types"
	"context"
	"time"
)

var _ IReadService = (*ReadService)(nil)

type IReadService interface {
	MarkVisited(ctx context.Context, userID, topicID int64) error
	MarkReadForum(ctx context.Context, userID, forumID int64) error
	MarkReadAll(ctx context.Context, userID int64) error
	Unread(ctx context.Context, userID int64, page int) (*types.TopicListResponse, error)
}

type ReadService struct {
	Config        *config.Config
	ForumDAO      *dao.Forum
	TopicDAO      *dao.Topic
	ReadMarkerDAO *dao.ReadMarker
	AuthService   IAuthService
}

// MarkVisited 浏览主题时调用，覆盖 (用户, 主题) 的最后访问时间
func (s *ReadService) MarkVisited(ctx context.Context, userID, topicID int64) error {
	if userID <= 0 {
		return nil
	}
	return s.ReadMarkerDAO.Upsert(ctx, userID, topicID, time.Now())
}

// MarkReadForum 单版块全部标记已读，版块不可见时按不存在处理
func (s *ReadService) MarkReadForum(ctx context.Context, userID, forumID int64) error {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	forum, err := s.ForumDAO.FindById(ctx, forumID)
	if err != nil {
		return err
	}
	if forum == nil {
		return response.NotFound("版块不存在")
	}
	if !forum.HasAccess(user) {
		// 原版对不可见版块静默跳过，这里保持同样行为
		return nil
	}
	return s.ReadMarkerDAO.UpsertForForum(ctx, userID, forumID, time.Now())
}

// MarkReadAll 全站标记已读：逐版块过滤可见性后盖标记
func (s *ReadService) MarkReadAll(ctx context.Context, userID int64) error {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	forums, err := s.ForumDAO.FindAllOrdered(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, forum := range forums {
		if !forum.HasAccess(user) {
			continue
		}
		if err := s.ReadMarkerDAO.UpsertForForum(ctx, userID, forum.ID, now); err != nil {
			return err
		}
	}
	return nil
}

// Unread 未读主题分页，总数走独立计数查询但与列表共享同一过滤条件
func (s *ReadService) Unread(ctx context.Context, userID int64, page int) (*types.TopicListResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.Unauthorized("请先登录")
	}

	perPage := s.Config.Forum.TopicsOnPage
	if page < 1 {
		page = 1
	}

	topics, err := s.TopicDAO.ListUnread(ctx, user, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	total, err := s.TopicDAO.CountUnread(ctx, user)
	if err != nil {
		return nil, err
	}

	return &types.TopicListResponse{
		Topics: toTopicBriefs(topics),
		Page:   types.NewPage(page, perPage, total),
	}, nil
}
