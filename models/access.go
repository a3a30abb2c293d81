package models

// Access 可见性能力，Category/Forum/Topic/Post 各自实现
// 可见性失败对外统一表现为"不存在"，避免暴露受限内容
type Access interface {
	HasAccess(u *Users) bool
}

var (
	_ Access = (*Category)(nil)
	_ Access = (*Forum)(nil)
	_ Access = (*Topic)(nil)
	_ Access = (*Post)(nil)
)
