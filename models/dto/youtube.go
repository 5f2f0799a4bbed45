package dto

// YouTubePostsRequest 频道视频列表查询参数
type YouTubePostsRequest struct {
	// ChannelID 频道 ID，缺省用配置的默认频道
	ChannelID string `form:"channelId" binding:"omitempty"`
	// Limit 返回数量，非法或缺省时取默认值，上限在服务层截断
	Limit int `form:"limit" binding:"omitempty"`
}
