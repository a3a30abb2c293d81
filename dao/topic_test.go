package dao

import (
	"Tribune/models"
	"context"
	"sync"
	"testing"
	"time"
)

func TestIncrViewsAccumulates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	topicDAO := NewTopic(db)

	mustCreate(t, db, &models.Topic{ID: 1, ForumID: 1, UserID: 1, Title: "t", Views: 5, LastPostAt: time.Now()})

	const n = 10
	for i := 0; i < n; i++ {
		if err := topicDAO.IncrViews(ctx, 1); err != nil {
			t.Fatalf("incr views: %v", err)
		}
	}

	var topic models.Topic
	if err := db.First(&topic, "id = ?", 1).Error; err != nil {
		t.Fatalf("load topic: %v", err)
	}
	if topic.Views != 5+n {
		t.Fatalf("views = %d, want %d", topic.Views, 5+n)
	}
}

func TestIncrViewsConcurrent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	topicDAO := NewTopic(db)

	// 单连接串行化 sqlite 的写入，丢更新只可能来自读改写而不是驱动层
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	mustCreate(t, db, &models.Topic{ID: 1, ForumID: 1, UserID: 1, Title: "t", LastPostAt: time.Now()})

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := topicDAO.IncrViews(ctx, 1); err != nil {
				t.Errorf("incr views: %v", err)
			}
		}()
	}
	wg.Wait()

	var topic models.Topic
	if err := db.First(&topic, "id = ?", 1).Error; err != nil {
		t.Fatalf("load topic: %v", err)
	}
	if topic.Views != n {
		t.Fatalf("views = %d after %d concurrent views, want %d", topic.Views, n, n)
	}
}

func TestToggleFlagSymmetric(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	topicDAO := NewTopic(db)

	mustCreate(t, db, &models.Topic{ID: 1, ForumID: 1, UserID: 1, Title: "t", LastPostAt: time.Now()})

	// 开关来回切，且不影响其它两个标记
	value, err := topicDAO.ToggleFlag(ctx, 1, models.FlagClosed)
	if err != nil || !value {
		t.Fatalf("first toggle = (%v, %v), want (true, nil)", value, err)
	}
	value, err = topicDAO.ToggleFlag(ctx, 1, models.FlagClosed)
	if err != nil || value {
		t.Fatalf("second toggle = (%v, %v), want (false, nil)", value, err)
	}

	var topic models.Topic
	if err := db.First(&topic, "id = ?", 1).Error; err != nil {
		t.Fatalf("load topic: %v", err)
	}
	if topic.Closed || topic.Sticky || topic.Heresy {
		t.Fatalf("flags = closed:%v sticky:%v heresy:%v, want all false",
			topic.Closed, topic.Sticky, topic.Heresy)
	}

	if _, err := topicDAO.ToggleFlag(ctx, 1, models.FlagSticky); err != nil {
		t.Fatalf("toggle sticky: %v", err)
	}
	if err := db.First(&topic, "id = ?", 1).Error; err != nil {
		t.Fatalf("load topic: %v", err)
	}
	if !topic.Sticky || topic.Closed || topic.Heresy {
		t.Fatal("sticky toggle must not touch other flags")
	}
}

func TestToggleFlagRejectsUnknownColumn(t *testing.T) {
	db := newTestDB(t)
	topicDAO := NewTopic(db)

	if _, err := topicDAO.ToggleFlag(context.Background(), 1, "views"); err == nil {
		t.Fatal("expected error for non-flag column")
	}
}

func TestUnreadListAndCountAgree(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	topicDAO := NewTopic(db)
	markerDAO := NewReadMarker(db)

	user := mustCreate(t, db, &models.Users{ID: 7, Username: "u7", IsActive: true})

	public := mustCreate(t, db, &models.Forum{ID: 1, CategoryID: 1, Name: "pub", Perms: models.PermsPublic})
	private := mustCreate(t, db, &models.Forum{ID: 2, CategoryID: 1, Name: "priv", Perms: models.PermsPrivate})

	now := time.Now()
	// 没有标记：未读
	mustCreate(t, db, &models.Topic{ID: 10, ForumID: public.ID, UserID: 1, Title: "a", LastPostAt: now})
	// 标记过期：未读
	mustCreate(t, db, &models.Topic{ID: 11, ForumID: public.ID, UserID: 1, Title: "b", LastPostAt: now})
	if err := markerDAO.Upsert(ctx, user.ID, 11, now.Add(-time.Hour)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// 标记新鲜：已读
	mustCreate(t, db, &models.Topic{ID: 12, ForumID: public.ID, UserID: 1, Title: "c", LastPostAt: now})
	if err := markerDAO.Upsert(ctx, user.ID, 12, now.Add(time.Hour)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// 不可见版块里的主题：对普通用户不算未读
	mustCreate(t, db, &models.Topic{ID: 13, ForumID: private.ID, UserID: 1, Title: "d", LastPostAt: now})

	topics, err := topicDAO.ListUnread(ctx, user, 50, 0)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	count, err := topicDAO.CountUnread(ctx, user)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}

	if int64(len(topics)) != count {
		t.Fatalf("list/count diverged: list=%d count=%d", len(topics), count)
	}
	if count != 2 {
		t.Fatalf("unread count = %d, want 2", count)
	}

	// 版主能看到私有版块，两条路径仍要一致
	moderator := mustCreate(t, db, &models.Users{ID: 8, Username: "mod", IsActive: true, IsModerator: true})
	topics, err = topicDAO.ListUnread(ctx, moderator, 50, 0)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	count, err = topicDAO.CountUnread(ctx, moderator)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if int64(len(topics)) != count || count != 4 {
		t.Fatalf("moderator unread: list=%d count=%d, want 4/4", len(topics), count)
	}
}

func TestListByForumStickyFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	topicDAO := NewTopic(db)

	base := time.Now().Add(-time.Hour)
	mustCreate(t, db, &models.Topic{ID: 1, ForumID: 1, UserID: 1, Title: "old", LastPostAt: base})
	mustCreate(t, db, &models.Topic{ID: 2, ForumID: 1, UserID: 1, Title: "new", LastPostAt: base.Add(30 * time.Minute)})
	mustCreate(t, db, &models.Topic{ID: 3, ForumID: 1, UserID: 1, Title: "pinned", Sticky: true, LastPostAt: base.Add(-30 * time.Minute)})

	topics, total, err := topicDAO.ListByForum(ctx, 1, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(topics) != 3 {
		t.Fatalf("total = %d, len = %d, want 3/3", total, len(topics))
	}
	if topics[0].ID != 3 {
		t.Fatalf("sticky topic must come first, got %d", topics[0].ID)
	}
	if topics[1].ID != 2 || topics[2].ID != 1 {
		t.Fatalf("rest must be ordered by last post desc, got %d,%d", topics[1].ID, topics[2].ID)
	}
}

func TestDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	topicDAO := NewTopic(db)

	mustCreate(t, db, &models.Forum{ID: 1, CategoryID: 1, Name: "f", TopicCount: 1, PostCount: 2})
	topic := mustCreate(t, db, &models.Topic{ID: 1, ForumID: 1, UserID: 1, Title: "t", PostCount: 2, LastPostAt: time.Now()})
	mustCreate(t, db, &models.Post{ID: 10, TopicID: 1, UserID: 1, Body: "a", CreatedAt: time.Now()})
	mustCreate(t, db, &models.Post{ID: 11, TopicID: 1, UserID: 2, Body: "b", CreatedAt: time.Now()})
	mustCreate(t, db, &models.ReadMarker{UserID: 1, TopicID: 1, VisitedAt: time.Now()})
	mustCreate(t, db, &models.Vote{VotableType: models.VotableTopic, VotableID: 1, UserID: 2})
	mustCreate(t, db, &models.Vote{VotableType: models.VotablePost, VotableID: 10, UserID: 2})

	if err := topicDAO.DeleteCascade(ctx, topic); err != nil {
		t.Fatalf("delete cascade: %v", err)
	}

	for _, check := range []struct {
		name  string
		model any
	}{
		{"topics", &models.Topic{}},
		{"posts", &models.Post{}},
		{"read_markers", &models.ReadMarker{}},
		{"votes", &models.Vote{}},
	} {
		var count int64
		if err := db.Model(check.model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", check.name, err)
		}
		if count != 0 {
			t.Fatalf("%s not cleaned up, %d rows left", check.name, count)
		}
	}

	var forum models.Forum
	if err := db.First(&forum, "id = ?", 1).Error; err != nil {
		t.Fatalf("load forum: %v", err)
	}
	if forum.TopicCount != 0 || forum.PostCount != 0 {
		t.Fatalf("forum counters = (%d, %d), want (0, 0)", forum.TopicCount, forum.PostCount)
	}
}
