package service

import (
	"context"
	"testing"

	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/myErrors"
)

// fakeYouTubeClient 记录调用参数并返回预置结果
type fakeYouTubeClient struct {
	gotChannelID string
	gotLimit     int
	items        []dependencies.YouTubeVideoItem
	err          error
}

func (f *fakeYouTubeClient) FetchChannelVideos(_ context.Context, channelID string, limit int) ([]dependencies.YouTubeVideoItem, error) {
	f.gotChannelID = channelID
	f.gotLimit = limit
	return f.items, f.err
}

func newYouTubeServiceForTest(t *testing.T, client *fakeYouTubeClient) YouTubeService {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)
	return NewYouTubeService(client, config.YouTubeConfig{DefaultChannelID: "UC_default"}, logger)
}

func TestListChannelVideosDefaultsAndClamping(t *testing.T) {
	client := &fakeYouTubeClient{}
	svc := newYouTubeServiceForTest(t, client)
	ctx := context.Background()

	// channelId 缺省走配置的默认频道，limit 非法取默认值
	_, err := svc.ListChannelVideos(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "UC_default", client.gotChannelID)
	assert.Equal(t, defaultYouTubeLimit, client.gotLimit)

	// 超过上游单页上限截断到 50
	_, err = svc.ListChannelVideos(ctx, "UC_custom", 500)
	require.NoError(t, err)
	assert.Equal(t, "UC_custom", client.gotChannelID)
	assert.Equal(t, maxYouTubeLimit, client.gotLimit)
}

func TestListChannelVideosBuildsWatchURL(t *testing.T) {
	client := &fakeYouTubeClient{
		items: []dependencies.YouTubeVideoItem{
			{VideoID: "abc123", Title: "demo"},
		},
	}
	svc := newYouTubeServiceForTest(t, client)

	videos, err := svc.ListChannelVideos(context.Background(), "UC_x", 5)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", videos[0].WatchURL)
}

func TestListChannelVideosPropagatesUpstreamError(t *testing.T) {
	client := &fakeYouTubeClient{err: myErrors.ErrUpstreamService}
	svc := newYouTubeServiceForTest(t, client)

	_, err := svc.ListChannelVideos(context.Background(), "UC_x", 5)
	assert.ErrorIs(t, err, myErrors.ErrUpstreamService)
}
