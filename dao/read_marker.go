package dao

import (
	"Tribune/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReadMarker struct {
	Repo[models.ReadMarker]
}

func NewReadMarker(db *gorm.DB) *ReadMarker {
	return &ReadMarker{
		Repo: NewRepo[models.ReadMarker](db),
	}
}

// Upsert 写入/覆盖 (用户, 主题) 的最后访问时间
func (d *ReadMarker) Upsert(ctx context.Context, userID, topicID int64, at time.Time) error {
	marker := models.ReadMarker{
		UserID:    userID,
		TopicID:   topicID,
		VisitedAt: at,
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.Assignments(map[string]any{"visited_at": at}),
	}).Create(&marker).Error
}

// UpsertForForum 把某版块下全部主题都盖上标记（全部标记已读）
func (d *ReadMarker) UpsertForForum(ctx context.Context, userID, forumID int64, at time.Time) error {
	var topicIDs []int64
	if err := d.Db.WithContext(ctx).Model(&models.Topic{}).
		Where("forum_id = ?", forumID).
		Pluck("id", &topicIDs).Error; err != nil {
		return err
	}
	if len(topicIDs) == 0 {
		return nil
	}

	markers := make([]models.ReadMarker, 0, len(topicIDs))
	for _, topicID := range topicIDs {
		markers = append(markers, models.ReadMarker{
			UserID:    userID,
			TopicID:   topicID,
			VisitedAt: at,
		})
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "topic_id"}},
		DoUpdates: clause.Assignments(map[string]any{"visited_at": at}),
	}).Create(&markers).Error
}

// FindByUserTopic 查询标记，不存在返回 nil
func (d *ReadMarker) FindByUserTopic(ctx context.Context, userID, topicID int64) (*models.ReadMarker, error) {
	return d.FindByWhere(ctx, "user_id = ? AND topic_id = ?", userID, topicID)
}
