package server

import (
	"Tribune/handler"
)

type Handlers struct {
	Auth  *handler.Auth
	Forum *handler.Forum
	Topic *handler.Topic
	Post  *handler.Post
	Vote  *handler.Vote
	Stats *handler.Stats
}
