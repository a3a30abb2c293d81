package dao

import (
	"Tribune/models"
	"context"

	"gorm.io/gorm"
)

type Stats struct {
	db *gorm.DB
}

func NewStats(db *gorm.DB) *Stats {
	return &Stats{db: db}
}

// UserCount 带计数的用户行（最活跃榜单用）
type UserCount struct {
	models.Users
	Count int64 `json:"count"`
}

// MonthBucket 按 (年, 月) 聚合的发帖数
type MonthBucket struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// MostViewedTopics 浏览数前 N 的主题，平手按主键序
func (d *Stats) MostViewedTopics(ctx context.Context, limit int) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := d.db.WithContext(ctx).
		Order("views DESC, id ASC").
		Limit(limit).
		Find(&topics).Error
	return topics, err
}

// MostActiveUsersByPosts 发帖数前 N 的用户
func (d *Stats) MostActiveUsersByPosts(ctx context.Context, limit int) ([]*UserCount, error) {
	var rows []*UserCount
	err := d.db.WithContext(ctx).Model(&models.Users{}).
		Select("users.*, COUNT(posts.id) AS count").
		Joins("JOIN posts ON posts.user_id = users.id").
		Group("users.id").
		Order("count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// MostActiveUsersByTopics 开题数前 N 的用户
func (d *Stats) MostActiveUsersByTopics(ctx context.Context, limit int) ([]*UserCount, error) {
	var rows []*UserCount
	err := d.db.WithContext(ctx).Model(&models.Users{}).
		Select("users.*, COUNT(topics.id) AS count").
		Joins("JOIN topics ON topics.user_id = users.id").
		Group("users.id").
		Order("count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ActiveUserCount 至少发过一帖的用户数
func (d *Stats) ActiveUserCount(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.Post{}).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// TotalViews 全部主题浏览数之和
func (d *Stats) TotalViews(ctx context.Context) (int64, error) {
	var total *int64
	err := d.db.WithContext(ctx).Model(&models.Topic{}).
		Select("SUM(views)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// MonthlyPostCounts 按 (年, 月) 统计发帖数，图表用
// MySQL 方言，测试走 service 层的分桶逻辑
func (d *Stats) MonthlyPostCounts(ctx context.Context) ([]*MonthBucket, error) {
	var rows []*MonthBucket
	err := d.db.WithContext(ctx).Model(&models.Post{}).
		Select("YEAR(created_at) AS year, MONTH(created_at) AS month, COUNT(id) AS count").
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	return rows, err
}
