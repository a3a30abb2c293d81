//go:build wireinject
// +build wireinject

package main

import (
	"Tribune/config"
	"Tribune/dao"
	"Tribune/dao/cache"
	"Tribune/handler"
	"Tribune/pkg/client"
	"Tribune/pkg/database"
	"Tribune/pkg/server"
	"Tribune/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Forum), "*"),
		wire.Struct(new(handler.Topic), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Vote), "*"),
		wire.Struct(new(handler.Stats), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
