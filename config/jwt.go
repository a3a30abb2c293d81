package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 访问令牌有效期（秒）
	ExpiresSeconds int `json:"expires_seconds" yaml:"expires_seconds"`
}
