package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ForumService), "*"),
	wire.Bind(new(IForumService), new(*ForumService)),

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(ReadService), "*"),
	wire.Bind(new(IReadService), new(*ReadService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),
)
