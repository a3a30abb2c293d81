package types

import "time"

type UserCountItem struct {
	User  UserBrief `json:"user"`
	Count int64     `json:"count"`
}

// 统计页报表，无任何帖子时计数为零、榜单为空、first_post_created 缺省
type StatisticResponse struct {
	ActiveUsersCount int64           `json:"active_users_count"`
	UsersCount       int64           `json:"users_count"`
	TopicsCount      int64           `json:"topics_count"`
	PostsCount       int64           `json:"posts_count"`
	ViewsCount       int64           `json:"views_count"`
	FirstPostCreated *time.Time      `json:"first_post_created,omitempty"`
	MostViewedTopics []TopicBrief    `json:"most_viewed_topics"`
	MostActiveUsers  []UserCountItem `json:"most_active_users"`
	MostTopicsUsers  []UserCountItem `json:"most_topics_users"`
}
