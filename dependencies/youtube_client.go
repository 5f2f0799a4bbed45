package dependencies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/myErrors"
)

// YouTubeVideoItem 上游两步查询（search + videos）合并后的单条视频数据
type YouTubeVideoItem struct {
	VideoID     string
	Title       string
	Description string
	PublishedAt time.Time
	Thumbnails  map[string]string
	Duration    string
	ViewCount   string
}

// YouTubeClientInterface 定义了 YouTube Data API 代理客户端需要实现的方法
type YouTubeClientInterface interface {
	// FetchChannelVideos 拉取频道最新视频。
	// 上游任何一步失败都返回 myErrors.ErrUpstreamService 包装后的错误。
	FetchChannelVideos(ctx context.Context, channelID string, limit int) ([]YouTubeVideoItem, error)
}

type youtubeClient struct {
	httpClient *http.Client
	logger     *core.ZapLogger
	cfg        *config.YouTubeConfig
}

// InitYouTubeClient 初始化 YouTube Data API 客户端。
// 出站请求挂 otelhttp Transport，链路追踪覆盖到上游调用。
func InitYouTubeClient(cfg *config.YouTubeConfig, logger *core.ZapLogger) (YouTubeClientInterface, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("YouTube 配置不完整，缺少 APIKey")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	logger.Info("YouTube 客户端初始化成功", zap.Duration("timeout", timeout))
	return &youtubeClient{httpClient: httpClient, logger: logger, cfg: cfg}, nil
}

// 上游响应的最小化反序列化结构，只取需要的字段

type ytThumbnail struct {
	URL string `json:"url"`
}

type ytSnippet struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	PublishedAt time.Time              `json:"publishedAt"`
	Thumbnails  map[string]ytThumbnail `json:"thumbnails"`
}

type ytSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet ytSnippet `json:"snippet"`
	} `json:"items"`
}

type ytVideosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// FetchChannelVideos 两步拉取：
// 1. search.list 按频道取最新视频的 ID 与摘要；
// 2. videos.list 用 ID 批量补时长与播放量。
func (c *youtubeClient) FetchChannelVideos(ctx context.Context, channelID string, limit int) ([]YouTubeVideoItem, error) {
	baseURL := c.cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/youtube/v3"
	}

	searchParams := url.Values{}
	searchParams.Set("key", c.cfg.APIKey)
	searchParams.Set("channelId", channelID)
	searchParams.Set("part", "snippet,id")
	searchParams.Set("order", "date")
	searchParams.Set("type", "video")
	searchParams.Set("maxResults", strconv.Itoa(limit))

	var searchResp ytSearchResponse
	if err := c.getJSON(ctx, baseURL+"/search?"+searchParams.Encode(), &searchResp); err != nil {
		return nil, err
	}
	if len(searchResp.Items) == 0 {
		return []YouTubeVideoItem{}, nil
	}

	videoIDs := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID != "" {
			videoIDs = append(videoIDs, item.ID.VideoID)
		}
	}

	videosParams := url.Values{}
	videosParams.Set("key", c.cfg.APIKey)
	videosParams.Set("part", "contentDetails,statistics")
	videosParams.Set("id", strings.Join(videoIDs, ","))

	var videosResp ytVideosResponse
	if err := c.getJSON(ctx, baseURL+"/videos?"+videosParams.Encode(), &videosResp); err != nil {
		return nil, err
	}

	details := make(map[string]struct {
		duration  string
		viewCount string
	}, len(videosResp.Items))
	for _, item := range videosResp.Items {
		details[item.ID] = struct {
			duration  string
			viewCount string
		}{item.ContentDetails.Duration, item.Statistics.ViewCount}
	}

	results := make([]YouTubeVideoItem, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		thumbnails := make(map[string]string, len(item.Snippet.Thumbnails))
		for size, thumb := range item.Snippet.Thumbnails {
			thumbnails[size] = thumb.URL
		}
		video := YouTubeVideoItem{
			VideoID:     item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			PublishedAt: item.Snippet.PublishedAt,
			Thumbnails:  thumbnails,
		}
		if d, ok := details[item.ID.VideoID]; ok {
			video.Duration = d.duration
			video.ViewCount = d.viewCount
		}
		results = append(results, video)
	}
	return results, nil
}

// getJSON 发起 GET 请求并反序列化响应；非 2xx 一律归为上游故障。
func (c *youtubeClient) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("调用 YouTube API 失败", zap.Error(err))
		return fmt.Errorf("%w: %v", myErrors.ErrUpstreamService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Error("YouTube API 返回非成功状态码",
			zap.Int("statusCode", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("%w: 状态码 %d", myErrors.ErrUpstreamService, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("解析 YouTube API 响应失败", zap.Error(err))
		return fmt.Errorf("%w: 响应解析失败: %v", myErrors.ErrUpstreamService, err)
	}
	return nil
}
