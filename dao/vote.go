package dao

import (
	"Tribune/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Vote struct {
	Repo[models.Vote]
}

func NewVote(db *gorm.DB) *Vote {
	return &Vote{
		Repo: NewRepo[models.Vote](db),
	}
}

// Toggle 投票开关：已投则撤销，未投则投上
// 写回的评分由 UPDATE 内的子查询重算，以写入时刻的成员集合为准
// 并发切换各自在事务里 Count 到的值可能过期，不能直接写回
func (d *Vote) Toggle(ctx context.Context, votableType string, votableID, userID int64) (rating int64, voted bool, err error) {
	var table string
	switch votableType {
	case models.VotableTopic:
		table = models.Topic{}.TableName()
	case models.VotablePost:
		table = models.Post{}.TableName()
	default:
		return 0, false, fmt.Errorf("unknown votable type: %s", votableType)
	}

	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		findErr := tx.Where("votable_type = ? AND votable_id = ? AND user_id = ?",
			votableType, votableID, userID).
			Limit(1).Find(&existing).Error
		if findErr != nil {
			return findErr
		}

		if existing.ID != 0 {
			if delErr := tx.Delete(&existing).Error; delErr != nil {
				return delErr
			}
			voted = false
		} else {
			vote := models.Vote{
				VotableType: votableType,
				VotableID:   votableID,
				UserID:      userID,
			}
			if createErr := tx.Create(&vote).Error; createErr != nil {
				return createErr
			}
			voted = true
		}

		if countErr := tx.Model(&models.Vote{}).
			Where("votable_type = ? AND votable_id = ?", votableType, votableID).
			Count(&rating).Error; countErr != nil {
			return countErr
		}

		return tx.Table(table).
			Where("id = ?", votableID).
			UpdateColumn("rating", gorm.Expr(
				"(SELECT COUNT(*) FROM votes WHERE votable_type = ? AND votable_id = ?)",
				votableType, votableID)).Error
	})
	return rating, voted, err
}

// HasVoted 当前用户是否已对该实体投票
func (d *Vote) HasVoted(ctx context.Context, votableType string, votableID, userID int64) (bool, error) {
	return d.IsExist(ctx, "votable_type = ? AND votable_id = ? AND user_id = ?",
		votableType, votableID, userID)
}
