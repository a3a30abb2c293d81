package dao

import (
	"Tribune/models"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Users{},
		&models.Category{},
		&models.Forum{},
		&models.Topic{},
		&models.Post{},
		&models.ReadMarker{},
		&models.Vote{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate[T any](t *testing.T, db *gorm.DB, item *T) *T {
	t.Helper()
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create %T: %v", item, err)
	}
	return item
}
