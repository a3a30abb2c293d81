package config

// Forum 论坛分页等业务配置
type Forum struct {
	TopicsOnPage int `json:"topics_on_page" yaml:"topics_on_page"`
	PostsOnPage  int `json:"posts_on_page" yaml:"posts_on_page"`
	// 在线状态的有效窗口（秒），超过视为离线
	OnlineWindowSeconds int `json:"online_window_seconds" yaml:"online_window_seconds"`
}

func (f *Forum) fillDefaults() {
	if f.TopicsOnPage <= 0 {
		f.TopicsOnPage = 25
	}
	if f.PostsOnPage <= 0 {
		f.PostsOnPage = 20
	}
	if f.OnlineWindowSeconds <= 0 {
		f.OnlineWindowSeconds = 900
	}
}
