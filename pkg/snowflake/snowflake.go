package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成全局唯一ID（主题、帖子、用户主键共用）
func GenID() int64 {
	return node.Generate().Int64()
}
