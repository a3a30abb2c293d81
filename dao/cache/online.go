package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	onlineUsersKey  = "forum:online:users"
	onlineGuestsKey = "forum:online:guests"
)

// OnlineStorage 在线状态缓存
// 有序集合，member 为用户ID或游客标识，score 为最后活跃时间
// 对论坛核心是只读依赖，读失败一律按"没人在线"处理
type OnlineStorage struct {
	redis *redis.Client
}

func NewOnlineStorage(rds *redis.Client) *OnlineStorage {
	return &OnlineStorage{rds}
}

// TouchUser 刷新登录用户的最后活跃时间
func (o *OnlineStorage) TouchUser(ctx context.Context, userID int64) {
	o.redis.ZAdd(ctx, onlineUsersKey, redis.Z{
		Score:  float64(time.Now().Unix()),
		Member: strconv.FormatInt(userID, 10),
	})
}

// TouchGuest 刷新游客的最后活跃时间
func (o *OnlineStorage) TouchGuest(ctx context.Context, guestID string) {
	o.redis.ZAdd(ctx, onlineGuestsKey, redis.Z{
		Score:  float64(time.Now().Unix()),
		Member: guestID,
	})
}

// OnlineUserIDs 窗口期内活跃的用户ID列表
func (o *OnlineStorage) OnlineUserIDs(ctx context.Context, window time.Duration) []int64 {
	members, err := o.active(ctx, onlineUsersKey, window)
	if err != nil {
		return nil
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		if id, convErr := strconv.ParseInt(m, 10, 64); convErr == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// GuestCount 窗口期内活跃的游客数
func (o *OnlineStorage) GuestCount(ctx context.Context, window time.Duration) int {
	members, err := o.active(ctx, onlineGuestsKey, window)
	if err != nil {
		return 0
	}
	return len(members)
}

// active 取窗口内的成员，顺手清掉窗口外的陈旧记录
func (o *OnlineStorage) active(ctx context.Context, key string, window time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-window).Unix()
	o.redis.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff-1, 10))
	return o.redis.ZRangeByScore(ctx, key, &redis.ZRangeBy{
		Min: strconv.FormatInt(cutoff, 10),
		Max: "+inf",
	}).Result()
}
