package config

// YouTubeConfig 第三方视频列表 API 配置
type YouTubeConfig struct {
	APIKey string `mapstructure:"api_key" json:"api_key" yaml:"api_key"`
	// BaseURL API 根地址，留空使用官方地址；测试时可指向本地 mock
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
	// DefaultChannelID 请求未携带 channelId 时兜底的频道
	DefaultChannelID string `mapstructure:"default_channel_id" json:"default_channel_id" yaml:"default_channel_id"`
	// TimeoutSeconds 出站请求超时（秒），0 表示使用默认 10 秒
	TimeoutSeconds int `mapstructure:"timeout_seconds" json:"timeout_seconds" yaml:"timeout_seconds"`
}
