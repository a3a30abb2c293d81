package dao

import (
	"Tribune/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// FindByIds 批量查询用户（在线列表用）
func (u *Users) FindByIds(ctx context.Context, ids []int64) ([]*models.Users, error) {
	if len(ids) == 0 {
		return []*models.Users{}, nil
	}
	var users []*models.Users
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
