package service

import (
	"Tribune/dao"
	"Tribune/types"
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

var _ IStatsService = (*StatsService)(nil)

type IStatsService interface {
	Statistic(ctx context.Context) (*types.StatisticResponse, error)
	PostsPerMonthChart(ctx context.Context) ([]byte, error)
}

type StatsService struct {
	UserDAO  *dao.Users
	TopicDAO *dao.Topic
	PostDAO  *dao.Post
	StatsDAO *dao.Stats
}

const statsTopN = 10

// Statistic 统计页报表，纯查询无写入，空库返回空报表而不是报错
func (s *StatsService) Statistic(ctx context.Context) (*types.StatisticResponse, error) {
	usersCount, err := s.UserDAO.FindCount(ctx, "")
	if err != nil {
		return nil, err
	}
	topicsCount, err := s.TopicDAO.FindCount(ctx, "")
	if err != nil {
		return nil, err
	}
	postsCount, err := s.PostDAO.FindCount(ctx, "")
	if err != nil {
		return nil, err
	}
	activeUsersCount, err := s.StatsDAO.ActiveUserCount(ctx)
	if err != nil {
		return nil, err
	}
	viewsCount, err := s.StatsDAO.TotalViews(ctx)
	if err != nil {
		return nil, err
	}

	resp := &types.StatisticResponse{
		ActiveUsersCount: activeUsersCount,
		UsersCount:       usersCount,
		TopicsCount:      topicsCount,
		PostsCount:       postsCount,
		ViewsCount:       viewsCount,
		MostViewedTopics: []types.TopicBrief{},
		MostActiveUsers:  []types.UserCountItem{},
		MostTopicsUsers:  []types.UserCountItem{},
	}

	// 首帖时间在空库下未定义，调用方负责守护，这里直接省略字段
	firstAt, ok, err := s.PostDAO.FirstCreatedAt(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		resp.FirstPostCreated = &firstAt
	}

	mostViewed, err := s.StatsDAO.MostViewedTopics(ctx, statsTopN)
	if err != nil {
		return nil, err
	}
	resp.MostViewedTopics = toTopicBriefs(mostViewed)

	byPosts, err := s.StatsDAO.MostActiveUsersByPosts(ctx, statsTopN)
	if err != nil {
		return nil, err
	}
	for _, row := range byPosts {
		resp.MostActiveUsers = append(resp.MostActiveUsers, types.UserCountItem{
			User:  toUserBrief(&row.Users),
			Count: row.Count,
		})
	}

	byTopics, err := s.StatsDAO.MostActiveUsersByTopics(ctx, statsTopN)
	if err != nil {
		return nil, err
	}
	for _, row := range byTopics {
		resp.MostTopicsUsers = append(resp.MostTopicsUsers, types.UserCountItem{
			User:  toUserBrief(&row.Users),
			Count: row.Count,
		})
	}

	return resp, nil
}

// PostsPerMonthChart 按月发帖数柱状图，输出 SVG
func (s *StatsService) PostsPerMonthChart(ctx context.Context) ([]byte, error) {
	buckets, err := s.StatsDAO.MonthlyPostCounts(ctx)
	if err != nil {
		return nil, err
	}

	bars := MonthBars(buckets)
	if len(bars) == 0 {
		// 空库没有可画的柱子，给一张空图
		return []byte(emptyChartSVG), nil
	}

	graph := chart.BarChart{
		Title:    "Posts per month",
		Height:   400,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MonthBars 把 (年, 月) 聚合转成图表柱子，标签格式 月.年
func MonthBars(buckets []*dao.MonthBucket) []chart.Value {
	bars := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d.%d", b.Month, b.Year),
			Value: float64(b.Count),
		})
	}
	return bars
}

const emptyChartSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="400"><text x="300" y="200" text-anchor="middle">Posts per month</text></svg>`
