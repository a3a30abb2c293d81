package models

import "testing"

func TestForumHasAccess(t *testing.T) {
	guest := (*Users)(nil)
	member := &Users{ID: 1, IsActive: true}
	inactive := &Users{ID: 2, IsActive: false}
	moderator := &Users{ID: 3, IsActive: true, IsModerator: true}

	tests := []struct {
		name  string
		perms int8
		user  *Users
		want  bool
	}{
		{"public_guest", PermsPublic, guest, true},
		{"public_member", PermsPublic, member, true},
		{"registered_guest", PermsRegistered, guest, false},
		{"registered_member", PermsRegistered, member, true},
		{"private_guest", PermsPrivate, guest, false},
		{"private_member", PermsPrivate, member, false},
		{"private_moderator", PermsPrivate, moderator, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Forum{Perms: tt.perms}
			if got := f.HasAccess(tt.user); got != tt.want {
				t.Fatalf("HasAccess = %v, want %v", got, tt.want)
			}
		})
	}

	// 未激活用户可见但不可发帖
	f := &Forum{Perms: PermsPublic}
	if !f.HasAccess(inactive) {
		t.Fatal("inactive user should still see public forum")
	}
	if f.CanPost(inactive) {
		t.Fatal("inactive user must not post")
	}
	if f.CanPost(guest) {
		t.Fatal("guest must not post")
	}
	if !f.CanPost(member) {
		t.Fatal("active member should post")
	}
}

func TestTopicCanPost(t *testing.T) {
	member := &Users{ID: 1, IsActive: true}
	moderator := &Users{ID: 2, IsActive: true, IsModerator: true}
	forum := &Forum{Perms: PermsPublic}

	open := &Topic{Forum: forum}
	if !open.CanPost(member) {
		t.Fatal("member should post in open topic")
	}

	closed := &Topic{Forum: forum, Closed: true}
	if closed.CanPost(member) {
		t.Fatal("member must not post in closed topic")
	}
	if !closed.CanPost(moderator) {
		t.Fatal("moderator should post in closed topic")
	}
}

func TestTopicModerationPerms(t *testing.T) {
	member := &Users{ID: 1, IsActive: true}
	moderator := &Users{ID: 2, IsActive: true, IsModerator: true}

	topic := &Topic{UserID: member.ID, Forum: &Forum{Perms: PermsPublic}}
	if topic.CanEdit(member) || topic.CanDelete(member) {
		t.Fatal("author without moderator flag must not edit/delete topic")
	}
	if !topic.CanEdit(moderator) || !topic.CanDelete(moderator) {
		t.Fatal("moderator should edit/delete topic")
	}
	if topic.CanEdit(nil) {
		t.Fatal("guest must not edit topic")
	}
}

func TestPostEditDeletePerms(t *testing.T) {
	author := &Users{ID: 1, IsActive: true}
	other := &Users{ID: 2, IsActive: true}
	moderator := &Users{ID: 3, IsActive: true, IsModerator: true}

	post := &Post{UserID: author.ID}
	if !post.CanEdit(author) {
		t.Fatal("author should edit own post")
	}
	if post.CanEdit(other) {
		t.Fatal("other user must not edit post")
	}
	if !post.CanEdit(moderator) {
		t.Fatal("moderator should edit any post")
	}

	if post.CanDelete(author) {
		t.Fatal("author must not delete own post")
	}
	if !post.CanDelete(moderator) {
		t.Fatal("moderator should delete post")
	}
}

func TestCategoryHasAccess(t *testing.T) {
	guest := (*Users)(nil)
	member := &Users{ID: 1, IsActive: true}

	category := &Category{Forums: []*Forum{
		{ID: 1, Perms: PermsRegistered},
		{ID: 2, Perms: PermsPrivate},
	}}
	if category.HasAccess(guest) {
		t.Fatal("category with no visible forums must be hidden from guest")
	}
	if !category.HasAccess(member) {
		t.Fatal("category should be visible to member")
	}
	if got := len(category.VisibleForums(member)); got != 1 {
		t.Fatalf("VisibleForums = %d, want 1", got)
	}
}

func TestMaxPerms(t *testing.T) {
	if MaxPerms(nil) != PermsPublic {
		t.Fatal("guest scope must be public only")
	}
	if MaxPerms(&Users{ID: 1}) != PermsRegistered {
		t.Fatal("member scope must include registered forums")
	}
	if MaxPerms(&Users{ID: 1, IsModerator: true}) != PermsPrivate {
		t.Fatal("moderator scope must include private forums")
	}
}
