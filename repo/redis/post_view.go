package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/constant"
)

// PostViewRepository 定义了帖子浏览量在 Redis 侧的操作接口。
// 读路径只打 Redis，浏览量由后台任务定期回写 MySQL。
type PostViewRepository interface {
	// IncrementViewCount 原子性地累加指定帖子的浏览量，返回累加后的总量。
	IncrementViewCount(ctx context.Context, postID uint64) (int64, error)

	// GetAllViewCounts 用 SCAN 分批获取全部帖子的浏览量计数。
	// - 作为回写 MySQL 的数据源；SCAN 避免 KEYS 阻塞 Redis。
	GetAllViewCounts(ctx context.Context) (map[uint64]int64, error)
}

type postViewRepository struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
	viewSyncCfg config.ViewSyncConfig
}

// NewPostViewRepository 创建 PostViewRepository 实例。
func NewPostViewRepository(redisClient *redis.Client, logger *core.ZapLogger, viewSyncCfg config.ViewSyncConfig) PostViewRepository {
	return &postViewRepository{
		redisClient: redisClient,
		logger:      logger,
		viewSyncCfg: viewSyncCfg,
	}
}

func (r *postViewRepository) IncrementViewCount(ctx context.Context, postID uint64) (int64, error) {
	viewCountKey := fmt.Sprintf("%s%d", constant.PostViewCountPrefix, postID)
	total, err := r.redisClient.Incr(ctx, viewCountKey).Result()
	if err != nil {
		r.logger.Error("增加帖子浏览量失败", zap.Uint64("postID", postID), zap.Error(err))
		return 0, fmt.Errorf("增加浏览量失败 (PostID: %d): %w", postID, err)
	}
	return total, nil
}

// GetAllViewCounts 使用 SCAN + MGET 迭代全部浏览量 Key。
// 单个 Key 解析失败只跳过该条，不中断整次同步。
func (r *postViewRepository) GetAllViewCounts(ctx context.Context) (map[uint64]int64, error) {
	viewCounts := make(map[uint64]int64)
	var cursor uint64
	matchPattern := constant.PostViewCountPrefix + "*"

	scanCount := r.viewSyncCfg.ScanBatchSize
	if scanCount <= 0 {
		scanCount = 1000
		r.logger.Warn("GetAllViewCounts: 配置中的 ScanBatchSize 无效或为零，使用默认值。",
			zap.Int64("defaultScanBatchSize", scanCount),
			zap.Int64("configuredScanBatchSize", r.viewSyncCfg.ScanBatchSize),
		)
	}

	startTime := time.Now()
	for {
		keys, nextCursor, err := r.redisClient.Scan(ctx, cursor, matchPattern, scanCount).Result()
		if err != nil {
			r.logger.Error("执行 Redis SCAN 命令失败",
				zap.Uint64("cursor", cursor),
				zap.String("pattern", matchPattern),
				zap.Error(err),
			)
			return nil, fmt.Errorf("扫描 Redis Keys 失败 (模式: %s): %w", matchPattern, err)
		}

		if len(keys) > 0 {
			values, mgetErr := r.redisClient.MGet(ctx, keys...).Result()
			if mgetErr != nil {
				r.logger.Error("执行 Redis MGET 命令批量获取浏览量失败", zap.Error(mgetErr))
				return nil, fmt.Errorf("批量获取浏览量值失败 (%d keys): %w", len(keys), mgetErr)
			}

			for i, key := range keys {
				postIDStr := strings.TrimPrefix(key, constant.PostViewCountPrefix)
				postID, parseErr := strconv.ParseUint(postIDStr, 10, 64)
				if parseErr != nil {
					r.logger.Error("从 Redis Key 解析 PostID 失败，已跳过该 Key。",
						zap.String("key", key), zap.Error(parseErr))
					continue
				}

				viewCount := int64(0)
				if i < len(values) && values[i] != nil {
					if valueStr, ok := values[i].(string); ok && valueStr != "" {
						parsedCount, parseCountErr := strconv.ParseInt(valueStr, 10, 64)
						if parseCountErr != nil {
							r.logger.Error("解析 Redis 中的浏览量值失败，该帖子浏览量将视为 0。",
								zap.String("key", key), zap.String("value_str", valueStr))
						} else {
							viewCount = parsedCount
						}
					}
				}
				viewCounts[postID] = viewCount
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	r.logger.Info("完成扫描 Redis 帖子浏览量",
		zap.Int("total_unique_posts_found", len(viewCounts)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return viewCounts, nil
}
