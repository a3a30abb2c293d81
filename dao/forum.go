package dao

import (
	"Tribune/models"
	"context"

	"gorm.io/gorm"
)

type Forum struct {
	Repo[models.Forum]
}

func NewForum(db *gorm.DB) *Forum {
	return &Forum{
		Repo: NewRepo[models.Forum](db),
	}
}

func (d *Forum) FindAllOrdered(ctx context.Context) ([]*models.Forum, error) {
	var forums []*models.Forum
	err := d.Db.WithContext(ctx).Order("position ASC, id ASC").Find(&forums).Error
	return forums, err
}
