package service

import (
	"Tribune/config"
	"Tribune/dao"
	"Tribune/dao/cache"
	"Tribune/models"
	"Tribune/pkg/response"
	"Tribune/types"
	"context"
	"time"
)

var _ IForumService = (*ForumService)(nil)

type IForumService interface {
	Index(ctx context.Context, userID int64) (*types.IndexResponse, error)
	ForumPage(ctx context.Context, userID, forumID int64, page int) (*types.ForumPageResponse, error)
}

type ForumService struct {
	Config      *config.Config
	CategoryDAO *dao.Category
	ForumDAO    *dao.Forum
	TopicDAO    *dao.Topic
	PostDAO     *dao.Post
	UserDAO     *dao.Users
	Online      *cache.OnlineStorage
	AuthService IAuthService
}

// Index 首页：可见分类/版块、在线用户与游客、全局计数
func (s *ForumService) Index(ctx context.Context, userID int64) (*types.IndexResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.CategoryDAO.FindAllWithForums(ctx)
	if err != nil {
		return nil, err
	}

	blocks := make([]types.CategoryBlock, 0, len(categories))
	for _, category := range categories {
		if !category.HasAccess(user) {
			continue
		}
		visible := category.VisibleForums(user)
		forums := make([]types.ForumBrief, 0, len(visible))
		for _, f := range visible {
			forums = append(forums, toForumBrief(f))
		}
		blocks = append(blocks, types.CategoryBlock{
			ID:     category.ID,
			Name:   category.Name,
			Forums: forums,
		})
	}

	window := time.Duration(s.Config.Forum.OnlineWindowSeconds) * time.Second
	onlineIDs := s.Online.OnlineUserIDs(ctx, window)
	onlineUsers, err := s.UserDAO.FindByIds(ctx, onlineIDs)
	if err != nil {
		return nil, err
	}
	usersOnline := make([]types.UserBrief, 0, len(onlineUsers))
	for _, u := range onlineUsers {
		usersOnline = append(usersOnline, toUserBrief(u))
	}

	usersCount, err := s.UserDAO.FindCount(ctx, "")
	if err != nil {
		return nil, err
	}
	topicsCount, err := s.TopicDAO.FindCount(ctx, "")
	if err != nil {
		return nil, err
	}
	postsCount, err := s.PostDAO.FindCount(ctx, "")
	if err != nil {
		return nil, err
	}

	return &types.IndexResponse{
		Categories:  blocks,
		UsersOnline: usersOnline,
		OnlineCount: len(usersOnline),
		GuestCount:  s.Online.GuestCount(ctx, window),
		UsersCount:  usersCount,
		TopicsCount: topicsCount,
		PostsCount:  postsCount,
	}, nil
}

// ForumPage 版块主题列表，不可见的版块按不存在处理
func (s *ForumService) ForumPage(ctx context.Context, userID, forumID int64, page int) (*types.ForumPageResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	forum, err := s.visibleForum(ctx, forumID, user)
	if err != nil {
		return nil, err
	}

	perPage := s.Config.Forum.TopicsOnPage
	if page < 1 {
		page = 1
	}
	topics, total, err := s.TopicDAO.ListByForum(ctx, forum.ID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return &types.ForumPageResponse{
		Forum:  toForumBrief(forum),
		Topics: toTopicBriefs(topics),
		Page:   types.NewPage(page, perPage, total),
	}, nil
}

// visibleForum 取版块并做可见性校验，失败一律 404
func (s *ForumService) visibleForum(ctx context.Context, forumID int64, user *models.Users) (*models.Forum, error) {
	forum, err := s.ForumDAO.FindById(ctx, forumID)
	if err != nil {
		return nil, err
	}
	if forum == nil || !forum.HasAccess(user) {
		return nil, response.NotFound("版块不存在")
	}
	return forum, nil
}
