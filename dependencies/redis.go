package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/content_service/config"
)

// InitRedis 初始化 Redis 客户端并做一次连通性检查
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, fmt.Errorf("Redis 配置不完整，缺少 address")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis 连通性检查失败", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("连接 Redis 失败: %w", err)
	}

	logger.Info("成功初始化 Redis 连接", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}
