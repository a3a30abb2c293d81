package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO，各实体 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// FindById 按主键查询，不存在返回 nil
func (r *Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 按条件查询单条，不存在返回 nil
func (r *Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(query, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, query string, args ...any) ([]*T, error) {
	var items []*T
	db := r.Db.WithContext(ctx)
	if query != "" {
		db = db.Where(query, args...)
	}
	err := db.Find(&items).Error
	return items, err
}

func (r *Repo[T]) FindCount(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	db := r.Db.WithContext(ctx).Model(new(T))
	if query != "" {
		db = db.Where(query, args...)
	}
	err := db.Count(&count).Error
	return count, err
}

func (r *Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	count, err := r.FindCount(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo[T]) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	return r.Db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(data).Error
}

func (r *Repo[T]) DeleteById(ctx context.Context, id int64) error {
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}
