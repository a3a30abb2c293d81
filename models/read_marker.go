package models

import "time"

// ReadMarker 每个 (用户, 主题) 一条"最后访问时间"
// 不存在记录或 visited_at 早于主题最后发帖时间即视为未读
// 只会被新标记覆盖，从不显式删除
type ReadMarker struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uk_user_topic,priority:1" json:"user_id"`
	TopicID   int64     `gorm:"not null;uniqueIndex:uk_user_topic,priority:2;index" json:"topic_id"`
	VisitedAt time.Time `gorm:"not null" json:"visited_at"`
}

func (ReadMarker) TableName() string {
	return "read_markers"
}
