package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewCategory,
	NewForum,
	NewTopic,
	NewPost,
	NewVote,
	NewReadMarker,
	NewStats,
)
