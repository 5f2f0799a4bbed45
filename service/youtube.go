package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/models/vo"
)

const (
	defaultYouTubeLimit = 10
	maxYouTubeLimit     = 50 // 上游 search.list 单页上限
)

// YouTubeService 定义了频道视频列表代理的业务逻辑接口。
// 只做整形转发，API Key 不出服务端。
type YouTubeService interface {
	// ListChannelVideos 拉取频道最新视频。
	// - channelID 为空时用配置的默认频道；limit 非法时取默认值并按上游上限截断。
	ListChannelVideos(ctx context.Context, channelID string, limit int) ([]vo.YouTubeVideoVO, error)
}

type youtubeService struct {
	client dependencies.YouTubeClientInterface
	cfg    config.YouTubeConfig
	logger *core.ZapLogger
}

// NewYouTubeService 是 youtubeService 的构造函数。
func NewYouTubeService(client dependencies.YouTubeClientInterface, cfg config.YouTubeConfig, logger *core.ZapLogger) YouTubeService {
	return &youtubeService{client: client, cfg: cfg, logger: logger}
}

func (s *youtubeService) ListChannelVideos(ctx context.Context, channelID string, limit int) ([]vo.YouTubeVideoVO, error) {
	if channelID == "" {
		channelID = s.cfg.DefaultChannelID
	}
	if limit <= 0 {
		limit = defaultYouTubeLimit
	}
	if limit > maxYouTubeLimit {
		limit = maxYouTubeLimit
	}

	items, err := s.client.FetchChannelVideos(ctx, channelID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]vo.YouTubeVideoVO, 0, len(items))
	for _, item := range items {
		result = append(result, vo.YouTubeVideoVO{
			VideoID:     item.VideoID,
			Title:       item.Title,
			Description: item.Description,
			PublishedAt: item.PublishedAt,
			Thumbnails:  item.Thumbnails,
			Duration:    item.Duration,
			ViewCount:   item.ViewCount,
			WatchURL:    fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.VideoID),
		})
	}
	return result, nil
}
