package models

import "time"

// 可投票实体类型
const (
	VotableTopic = "topic"
	VotablePost  = "post"
)

// Vote 投票记录
// 唯一键: votable_type + votable_id + user_id，存在即已投
// 评分是成员集合的计数，每次切换后整表重算，不做增量
type Vote struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	VotableType string    `gorm:"type:varchar(8);not null;uniqueIndex:uk_votable_user,priority:1" json:"votable_type"`
	VotableID   int64     `gorm:"not null;uniqueIndex:uk_votable_user,priority:2" json:"votable_id"`
	UserID      int64     `gorm:"not null;uniqueIndex:uk_votable_user,priority:3;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Vote) TableName() string {
	return "votes"
}
