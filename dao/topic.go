package dao

import (
	"Tribune/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{
		Repo: NewRepo[models.Topic](db),
	}
}

// FindByIdWithForum 按主键取主题并预加载版块，不存在返回 nil
func (d *Topic) FindByIdWithForum(ctx context.Context, id int64) (*models.Topic, error) {
	var topic models.Topic
	err := d.Db.WithContext(ctx).Preload("Forum").Where("id = ?", id).First(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// ListByForum 版块主题列表，置顶在前，按最后发帖时间倒序
func (d *Topic) ListByForum(ctx context.Context, forumID int64, limit, offset int) ([]*models.Topic, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.Topic{}).
		Where("forum_id = ?", forumID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Where("forum_id = ?", forumID).
		Order("sticky DESC, last_post_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&topics).Error
	return topics, total, err
}

// ListByUser 用户自己的主题列表
func (d *Topic) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Topic, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.Topic{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_post_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&topics).Error
	return topics, total, err
}

// CreateWithFirstPost 建主题带首帖，计数同事务修正
func (d *Topic) CreateWithFirstPost(ctx context.Context, topic *models.Topic, post *models.Post) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(topic).Error; err != nil {
			return err
		}
		post.TopicID = topic.ID
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Topic{}).Where("id = ?", topic.ID).
			Updates(map[string]any{
				"post_count":   1,
				"last_post_at": post.CreatedAt,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Forum{}).Where("id = ?", topic.ForumID).
			Updates(map[string]any{
				"topic_count": gorm.Expr("topic_count + ?", 1),
				"post_count":  gorm.Expr("post_count + ?", 1),
			}).Error
	})
}

// IncrViews 浏览计数 +1，必须是原子自增，并发浏览不能丢更新
func (d *Topic) IncrViews(ctx context.Context, topicID int64) error {
	return d.Db.WithContext(ctx).Model(&models.Topic{}).
		Where("id = ?", topicID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// unreadScope 未读主题的共享查询条件
// 列表和计数都从这里出，绝不允许两条路径各写一份过滤条件
func (d *Topic) unreadScope(ctx context.Context, user *models.Users) *gorm.DB {
	return d.Db.WithContext(ctx).Model(&models.Topic{}).
		Joins("JOIN forums ON forums.id = topics.forum_id").
		Joins("LEFT JOIN read_markers ON read_markers.topic_id = topics.id AND read_markers.user_id = ?", user.ID).
		Where("forums.perms <= ?", models.MaxPerms(user)).
		Where("read_markers.id IS NULL OR read_markers.visited_at < topics.last_post_at")
}

// ListUnread 未读主题分页列表
func (d *Topic) ListUnread(ctx context.Context, user *models.Users, limit, offset int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.unreadScope(ctx, user).
		Order("topics.last_post_at DESC, topics.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&topics).Error
	return topics, err
}

// CountUnread 未读主题总数，分页需要总数而不必物化所有行
func (d *Topic) CountUnread(ctx context.Context, user *models.Users) (int64, error) {
	var count int64
	err := d.unreadScope(ctx, user).Count(&count).Error
	return count, err
}

// ToggleFlag 切换单个标记列并返回新值，编辑权限由 service 层把关
// 列名白名单，防止拼接任意列
func (d *Topic) ToggleFlag(ctx context.Context, topicID int64, flag string) (bool, error) {
	switch flag {
	case models.FlagHeresy, models.FlagClosed, models.FlagSticky:
	default:
		return false, fmt.Errorf("unknown topic flag: %s", flag)
	}

	var newValue bool
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var topic models.Topic
		if err := tx.Where("id = ?", topicID).First(&topic).Error; err != nil {
			return err
		}
		current := map[string]bool{
			models.FlagHeresy: topic.Heresy,
			models.FlagClosed: topic.Closed,
			models.FlagSticky: topic.Sticky,
		}[flag]
		newValue = !current
		return tx.Model(&models.Topic{}).
			Where("id = ?", topicID).
			UpdateColumn(flag, newValue).Error
	})
	return newValue, err
}

// Move 把主题移动到另一个版块，双方计数随之修正
func (d *Topic) Move(ctx context.Context, topic *models.Topic, destForumID int64) error {
	if topic.ForumID == destForumID {
		return nil
	}
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Topic{}).
			Where("id = ?", topic.ID).
			Updates(map[string]any{"forum_id": destForumID}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Forum{}).Where("id = ?", topic.ForumID).
			Updates(map[string]any{
				"topic_count": gorm.Expr("topic_count - ?", 1),
				"post_count":  gorm.Expr("post_count - ?", topic.PostCount),
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Forum{}).Where("id = ?", destForumID).
			Updates(map[string]any{
				"topic_count": gorm.Expr("topic_count + ?", 1),
				"post_count":  gorm.Expr("post_count + ?", topic.PostCount),
			}).Error
	})
}

// DeleteCascade 删除主题并级联清理帖子、阅读标记和投票
func (d *Topic) DeleteCascade(ctx context.Context, topic *models.Topic) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []int64
		if err := tx.Model(&models.Post{}).
			Where("topic_id = ?", topic.ID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", topic.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", topic.ID).Delete(&models.ReadMarker{}).Error; err != nil {
			return err
		}
		if err := tx.Where("votable_type = ? AND votable_id = ?",
			models.VotableTopic, topic.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("votable_type = ? AND votable_id IN ?",
				models.VotablePost, postIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("id = ?", topic.ID).Delete(&models.Topic{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Forum{}).Where("id = ?", topic.ForumID).
			Updates(map[string]any{
				"topic_count": gorm.Expr("topic_count - ?", 1),
				"post_count":  gorm.Expr("post_count - ?", len(postIDs)),
			}).Error
	})
}

// FindOwn 按主键+作者取主题，订阅类操作只允许命中自己的主题
func (d *Topic) FindOwn(ctx context.Context, topicID, userID int64) (*models.Topic, error) {
	return d.FindByWhere(ctx, "id = ? AND user_id = ?", topicID, userID)
}

// SetSendResponse 订阅/退订回帖通知
func (d *Topic) SetSendResponse(ctx context.Context, topicID int64, subscribed bool) error {
	return d.Db.WithContext(ctx).Model(&models.Topic{}).
		Where("id = ?", topicID).
		UpdateColumn("send_response", subscribed).Error
}
