package database

import (
	"Tribune/config"
	"Tribune/models"
	"Tribune/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// AutoMigrate 建表/补索引
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Users{},
		&models.Category{},
		&models.Forum{},
		&models.Topic{},
		&models.Post{},
		&models.ReadMarker{},
		&models.Vote{},
	)
}
