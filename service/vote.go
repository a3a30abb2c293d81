package service

import (
	"Tribune/dao"
	"Tribune/models"
	"Tribune/pkg/response"
	"Tribune/types"
	"context"
)

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	Vote(ctx context.Context, userID int64, votableType string, votableID int64) (*types.VoteResponse, error)
}

type VoteService struct {
	TopicDAO    *dao.Topic
	PostDAO     *dao.Post
	VoteDAO     *dao.Vote
	AuthService IAuthService
}

// Vote 投票开关
// 游客直接 403；实体不可见也按 403（调用方已经知道实体标识）
// 切换和评分重算在 DAO 的同一事务里完成
func (s *VoteService) Vote(ctx context.Context, userID int64, votableType string, votableID int64) (*types.VoteResponse, error) {
	user, err := s.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.Forbidden("请先登录")
	}

	entity, err := s.findVotable(ctx, votableType, votableID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, response.NotFound("投票对象不存在")
	}
	if !entity.HasAccess(user) {
		return nil, response.Forbidden("没有访问权限")
	}

	rating, voted, err := s.VoteDAO.Toggle(ctx, votableType, votableID, user.ID)
	if err != nil {
		return nil, err
	}
	return &types.VoteResponse{
		Rating: rating,
		Voted:  voted,
	}, nil
}

// findVotable 按类型取可投票实体，不存在返回 nil
func (s *VoteService) findVotable(ctx context.Context, votableType string, votableID int64) (models.Access, error) {
	switch votableType {
	case models.VotableTopic:
		topic, err := s.TopicDAO.FindByIdWithForum(ctx, votableID)
		if err != nil {
			return nil, err
		}
		if topic == nil {
			return nil, nil
		}
		return topic, nil
	case models.VotablePost:
		post, err := s.PostDAO.FindByIdWithTopic(ctx, votableID)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, nil
		}
		return post, nil
	default:
		return nil, response.BadRequest("不支持的投票对象")
	}
}
