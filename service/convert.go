package service

import (
	"Tribune/models"
	"Tribune/types"
)

func toForumBrief(f *models.Forum) types.ForumBrief {
	return types.ForumBrief{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		TopicCount:  f.TopicCount,
		PostCount:   f.PostCount,
	}
}

func toTopicBrief(t *models.Topic) types.TopicBrief {
	return types.TopicBrief{
		ID:         t.ID,
		ForumID:    t.ForumID,
		UserID:     t.UserID,
		Title:      t.Title,
		Views:      t.Views,
		Heresy:     t.Heresy,
		Closed:     t.Closed,
		Sticky:     t.Sticky,
		Rating:     t.Rating,
		PostCount:  t.PostCount,
		LastPostAt: t.LastPostAt,
		CreatedAt:  t.CreatedAt,
	}
}

func toTopicBriefs(topics []*models.Topic) []types.TopicBrief {
	briefs := make([]types.TopicBrief, 0, len(topics))
	for _, t := range topics {
		briefs = append(briefs, toTopicBrief(t))
	}
	return briefs
}

func toPostItem(p *models.Post) types.PostItem {
	return types.PostItem{
		ID:          p.ID,
		TopicID:     p.TopicID,
		UserID:      p.UserID,
		Body:        p.Body,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		UpdatedByID: p.UpdatedByID,
	}
}

func toUserBrief(u *models.Users) types.UserBrief {
	return types.UserBrief{
		ID:          u.ID,
		Username:    u.Username,
		IsModerator: u.IsModerator,
	}
}
