package dao

import (
	"Tribune/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Post struct {
	Repo[models.Post]
}

func NewPost(db *gorm.DB) *Post {
	return &Post{
		Repo: NewRepo[models.Post](db),
	}
}

// FindByIdWithTopic 按主键取帖子并预加载主题和版块，不存在返回 nil
func (d *Post) FindByIdWithTopic(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := d.Db.WithContext(ctx).
		Preload("Topic.Forum").
		Where("id = ?", id).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByTopic 主题帖子列表，按发帖时间正序
func (d *Post) ListByTopic(ctx context.Context, topicID int64, limit, offset int) ([]*models.Post, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("topic_id = ?", topicID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// CreateInTopic 发帖并同步推进主题/版块计数与最后发帖时间
func (d *Post) CreateInTopic(ctx context.Context, post *models.Post, forumID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Topic{}).Where("id = ?", post.TopicID).
			Updates(map[string]any{
				"post_count":   gorm.Expr("post_count + ?", 1),
				"last_post_at": post.CreatedAt,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Forum{}).Where("id = ?", forumID).
			UpdateColumn("post_count", gorm.Expr("post_count + ?", 1)).Error
	})
}

// Edit 编辑正文并盖上编辑时间/编辑人
func (d *Post) Edit(ctx context.Context, postID int64, body string, editorID int64, at time.Time) error {
	return d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(map[string]any{
			"body":          body,
			"updated_at":    at,
			"updated_by_id": editorID,
		}).Error
}

// DeleteWithCounters 删帖并修正主题/版块计数、回退 last_post_at 与投票
func (d *Post) DeleteWithCounters(ctx context.Context, post *models.Post, forumID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", post.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("votable_type = ? AND votable_id = ?",
			models.VotablePost, post.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		// last_post_at 回退到剩余帖子的最新时间，主题已空则退回主题创建时间
		var topic models.Topic
		if err := tx.Where("id = ?", post.TopicID).First(&topic).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		var lastAt time.Time
		var remaining int64
		if err := tx.Model(&models.Post{}).
			Where("topic_id = ?", post.TopicID).Count(&remaining).Error; err != nil {
			return err
		}
		lastAt = topic.CreatedAt
		if remaining > 0 {
			var newest models.Post
			if err := tx.Where("topic_id = ?", post.TopicID).
				Order("created_at DESC, id DESC").First(&newest).Error; err != nil {
				return err
			}
			lastAt = newest.CreatedAt
		}
		if err := tx.Model(&models.Topic{}).Where("id = ?", post.TopicID).
			Updates(map[string]any{
				"post_count":   remaining,
				"last_post_at": lastAt,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Forum{}).Where("id = ?", forumID).
			UpdateColumn("post_count", gorm.Expr("post_count - ?", 1)).Error
	})
}

// FirstCreatedAt 最早一帖的时间，无帖子时 ok=false
func (d *Post) FirstCreatedAt(ctx context.Context) (time.Time, bool, error) {
	var post models.Post
	err := d.Db.WithContext(ctx).Order("created_at ASC, id ASC").First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return post.CreatedAt, true, nil
}
