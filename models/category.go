package models

import "time"

// Category 版块分类表
type Category struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"type:varchar(64);not null" json:"name"`
	Position int32  `gorm:"default:0;index" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Forums []*Forum `gorm:"foreignKey:CategoryID" json:"forums,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// HasAccess 至少有一个子版块对该用户可见时，分类才可见
func (c *Category) HasAccess(u *Users) bool {
	for _, f := range c.Forums {
		if f.HasAccess(u) {
			return true
		}
	}
	return false
}

// VisibleForums 过滤出该用户可见的子版块
func (c *Category) VisibleForums(u *Users) []*Forum {
	forums := make([]*Forum, 0, len(c.Forums))
	for _, f := range c.Forums {
		if f.HasAccess(u) {
			forums = append(forums, f)
		}
	}
	return forums
}
