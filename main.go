package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/content_service/docs" // swagger 文档注册

	appConfig "github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/controller"
	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/content_service/repo/redis"
	"github.com/Xushengqwer/content_service/router"
	"github.com/Xushengqwer/content_service/security"
	"github.com/Xushengqwer/content_service/service"
	"github.com/Xushengqwer/content_service/tasks"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.uber.org/zap"
)

// @title           Content Service API
// @version         1.0
// @description     内容服务，提供用户、帖子、分类、标签、活动管理及媒体上传、视频列表代理等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8085

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.ContentConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil }
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 Cloudinary 媒体客户端
	mediaClient, mediaErr := dependencies.InitCloudinary(&cfg.CloudinaryConfig, logger)
	if mediaErr != nil {
		logger.Fatal("初始化 Cloudinary 客户端失败", zap.Error(mediaErr))
	}
	logger.Info("Cloudinary 客户端初始化成功")

	// 4.4 YouTube 客户端
	youtubeClient, ytErr := dependencies.InitYouTubeClient(&cfg.YouTubeConfig, logger)
	if ytErr != nil {
		logger.Fatal("初始化 YouTube 客户端失败", zap.Error(ytErr))
	}
	logger.Info("YouTube 客户端初始化成功")

	// 4.5 Kafka 生产者
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, logger)
	if len(cfg.KafkaConfig.Brokers) == 0 {
		logger.Warn("未配置 Kafka brokers，事件投递将不可用")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	userRepo := mysql.NewUserRepository(db, logger)
	roleRepo := mysql.NewRoleRepository(db, logger)
	postRepo := mysql.NewPostRepository(db, logger)
	relationRepo := mysql.NewPostRelationRepository(logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	eventRepo := mysql.NewEventRepository(db, logger)
	uploadRepo := mysql.NewUploadRepository(db, logger)
	postBatchRepo := mysql.NewPostBatchOperationsRepository(db, logger, cfg.ViewSyncConfig)
	logger.Debug("MySQL Repositories 初始化完成")

	postViewRepo := redisrepo.NewPostViewRepository(rdb, logger, cfg.ViewSyncConfig)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化安全组件与服务层 (Services) ---
	hasher := security.NewPasswordHasher(cfg.AuthConfig.BcryptCost)
	tokens := security.NewTokenManager(&cfg.AuthConfig)

	authService := service.NewAuthService(db, userRepo, roleRepo, hasher, tokens, cfg.AuthConfig, logger)
	userService := service.NewUserService(db, userRepo, roleRepo, hasher, logger)
	postService := service.NewPostService(db, postRepo, relationRepo, postViewRepo, kafkaProducer, logger)
	categoryService := service.NewCategoryService(db, categoryRepo, logger)
	tagService := service.NewTagService(tagRepo, logger)
	eventService := service.NewEventService(eventRepo, logger)
	uploadService := service.NewUploadService(uploadRepo, mediaClient, logger)
	youtubeService := service.NewYouTubeService(youtubeClient, cfg.YouTubeConfig, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	controllers := &router.Controllers{
		Auth:     controller.NewAuthController(authService),
		User:     controller.NewUserController(userService),
		Post:     controller.NewPostController(postService),
		Category: controller.NewCategoryController(categoryService),
		Tag:      controller.NewTagController(tagService),
		Event:    controller.NewEventController(eventService),
		Upload:   controller.NewUploadController(uploadService),
		YouTube:  controller.NewYouTubeController(youtubeService),
	}
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化定时任务 ---
	syncTask := tasks.NewViewCountSyncTask(postViewRepo, postBatchRepo, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 9. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, tokens, userRepo, controllers)
	logger.Info("Gin 路由器已设置")

	// --- 10. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 11. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 停止定时任务调度器 (等待在途任务结束)
	logger.Info("正在停止定时任务...")
	syncStopCtx := syncTask.Stop()
	select {
	case <-syncStopCtx.Done():
		logger.Info("浏览量同步任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// c. 关闭 Kafka 生产者
	if err := kafkaProducer.Close(); err != nil {
		logger.Error("关闭 Kafka 生产者时出错", zap.Error(err))
	} else {
		logger.Info("Kafka 生产者已关闭")
	}

	// d. 关闭 Redis 连接
	if err := rdb.Close(); err != nil {
		logger.Error("关闭 Redis 连接时出错", zap.Error(err))
	}

	logger.Info("服务已成功关闭")
}
