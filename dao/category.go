package dao

import (
	"Tribune/models"
	"context"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{
		Repo: NewRepo[models.Category](db),
	}
}

// FindAllWithForums 按排序键取全部分类并预加载版块
// 可见性在 models 层按用户过滤，这里不做
func (d *Category) FindAllWithForums(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).
		Preload("Forums", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Order("position ASC, id ASC").
		Find(&categories).Error
	return categories, err
}
