package service

import (
	"Tribune/models"
	"context"
	"net/http"
	"testing"
	"time"
)

func TestUnreadRequiresLogin(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.Read.Unread(context.Background(), 0, 1)
	assertBizCode(t, err, http.StatusUnauthorized)
}

func TestUnreadClearedByVisit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t, &models.Users{ID: 1, Username: "alice", PasswordHash: "x", IsActive: true})
	env.create(t, &models.Forum{ID: 1, CategoryID: 1, Name: "general"})
	env.create(t, &models.Topic{ID: 10, ForumID: 1, UserID: 1, Title: "t", LastPostAt: time.Now()})

	resp, err := env.Read.Unread(ctx, 1, 1)
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if len(resp.Topics) != 1 || resp.Page.Total != 1 {
		t.Fatalf("unread = %d topics, total %d, want 1/1", len(resp.Topics), resp.Page.Total)
	}

	// 浏览主题页后不再是未读
	if _, err := env.Topic.TopicPage(ctx, 1, 10, 1); err != nil {
		t.Fatalf("topic page: %v", err)
	}
	resp, err = env.Read.Unread(ctx, 1, 1)
	if err != nil {
		t.Fatalf("unread after visit: %v", err)
	}
	if len(resp.Topics) != 0 || resp.Page.Total != 0 {
		t.Fatalf("unread = %d topics, total %d, want 0/0", len(resp.Topics), resp.Page.Total)
	}
}

func TestMarkReadForumSkipsInvisible(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t, &models.Users{ID: 1, Username: "alice", PasswordHash: "x", IsActive: true})
	env.create(t, &models.Forum{ID: 1, CategoryID: 1, Name: "staff", Perms: models.PermsPrivate})
	env.create(t, &models.Topic{ID: 10, ForumID: 1, UserID: 1, Title: "t", LastPostAt: time.Now()})

	// 不可见版块静默跳过，不报错也不盖标记
	if err := env.Read.MarkReadForum(ctx, 1, 1); err != nil {
		t.Fatalf("mark read forum: %v", err)
	}
	var markers int64
	env.DB.Model(&models.ReadMarker{}).Count(&markers)
	if markers != 0 {
		t.Fatalf("markers = %d, want 0", markers)
	}
}

func TestMarkReadAllVisibleForumsOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.create(t, &models.Users{ID: 1, Username: "alice", PasswordHash: "x", IsActive: true})
	env.create(t, &models.Forum{ID: 1, CategoryID: 1, Name: "general"})
	env.create(t, &models.Forum{ID: 2, CategoryID: 1, Name: "staff", Perms: models.PermsPrivate})
	env.create(t, &models.Topic{ID: 10, ForumID: 1, UserID: 1, Title: "public", LastPostAt: time.Now()})
	env.create(t, &models.Topic{ID: 11, ForumID: 2, UserID: 1, Title: "hidden", LastPostAt: time.Now()})

	if err := env.Read.MarkReadAll(ctx, 1); err != nil {
		t.Fatalf("mark read all: %v", err)
	}

	var markers []models.ReadMarker
	env.DB.Find(&markers)
	if len(markers) != 1 {
		t.Fatalf("markers = %d, want 1", len(markers))
	}
	if markers[0].TopicID != 10 {
		t.Fatalf("marked topic = %d, want 10", markers[0].TopicID)
	}
}
