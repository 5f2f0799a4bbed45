package vo

import "time"

// YouTubeVideoVO 上游视频条目整形后的视图
type YouTubeVideoVO struct {
	VideoID     string            `json:"video_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	PublishedAt time.Time         `json:"published_at"`
	Thumbnails  map[string]string `json:"thumbnails"` // 尺寸名 -> 图片 URL
	Duration    string            `json:"duration"`   // ISO8601，如 PT4M13S
	ViewCount   string            `json:"view_count"`
	WatchURL    string            `json:"watch_url"`
}
