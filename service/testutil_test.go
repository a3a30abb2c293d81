package service

import (
	"Tribune/config"
	"Tribune/dao"
	"Tribune/dao/cache"
	"Tribune/models"
	"Tribune/pkg/response"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv 一套落在内存库上的完整服务依赖
type testEnv struct {
	DB    *gorm.DB
	Auth  *AuthService
	Forum *ForumService
	Topic *TopicService
	Post  *PostService
	Vote  *VoteService
	Read  *ReadService
	Stats *StatsService
}

func newTestEnv(t *testing.T) *testEnv {
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

	cfg := &config.Config{
		Jwt:   &config.Jwt{Secret: "test-secret", ExpiresSeconds: 3600},
		Forum: &config.Forum{TopicsOnPage: 25, PostsOnPage: 20, OnlineWindowSeconds: 900},
	}

	userDAO := dao.NewUsers(db)
	categoryDAO := dao.NewCategory(db)
	forumDAO := dao.NewForum(db)
	topicDAO := dao.NewTopic(db)
	postDAO := dao.NewPost(db)
	voteDAO := dao.NewVote(db)
	markerDAO := dao.NewReadMarker(db)
	statsDAO := dao.NewStats(db)

	// 不可达的 redis，在线状态读失败按"没人在线"处理
	online := cache.NewOnlineStorage(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))

	auth := &AuthService{Config: cfg, UserDAO: userDAO}
	read := &ReadService{
		Config:        cfg,
		ForumDAO:      forumDAO,
		TopicDAO:      topicDAO,
		ReadMarkerDAO: markerDAO,
		AuthService:   auth,
	}
	return &testEnv{
		DB:   db,
		Auth: auth,
		Forum: &ForumService{
			Config:      cfg,
			CategoryDAO: categoryDAO,
			ForumDAO:    forumDAO,
			TopicDAO:    topicDAO,
			PostDAO:     postDAO,
			UserDAO:     userDAO,
			Online:      online,
			AuthService: auth,
		},
		Topic: &TopicService{
			Config:      cfg,
			ForumDAO:    forumDAO,
			TopicDAO:    topicDAO,
			PostDAO:     postDAO,
			AuthService: auth,
			ReadService: read,
		},
		Post: &PostService{
			TopicDAO:    topicDAO,
			PostDAO:     postDAO,
			AuthService: auth,
		},
		Vote: &VoteService{
			TopicDAO:    topicDAO,
			PostDAO:     postDAO,
			VoteDAO:     voteDAO,
			AuthService: auth,
		},
		Read: read,
		Stats: &StatsService{
			UserDAO:  userDAO,
			TopicDAO: topicDAO,
			PostDAO:  postDAO,
			StatsDAO: statsDAO,
		},
	}
}

func (e *testEnv) create(t *testing.T, item any) {
	t.Helper()
	if err := e.DB.Create(item).Error; err != nil {
		t.Fatalf("create %T: %v", item, err)
	}
}

func assertBizCode(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("want BizError %d, got nil", code)
	}
	be, ok := err.(*response.BizError)
	if !ok {
		t.Fatalf("want BizError %d, got %T: %v", code, err, err)
	}
	if be.Code != code {
		t.Fatalf("error code = %d, want %d", be.Code, code)
	}
}
