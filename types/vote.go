package types

// 投票回执，只暴露新评分和当前用户的投票状态
type VoteResponse struct {
	Rating int64 `json:"rating"`
	Voted  bool  `json:"voted"`
}
