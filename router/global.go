package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/controller"
	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/security"
)

// Controllers 汇总所有控制器，SetupRouter 按组注册。
type Controllers struct {
	Auth     *controller.AuthController
	User     *controller.UserController
	Post     *controller.PostController
	Category *controller.CategoryController
	Tag      *controller.TagController
	Event    *controller.EventController
	Upload   *controller.UploadController
	YouTube  *controller.YouTubeController
}

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.ContentConfig,
	tokens *security.TokenManager,
	userRepo mysql.UserRepository,
	controllers *Controllers,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New()，Recovery 与访问日志由公共中间件接管
	router := gin.New()
	router.MaxMultipartMemory = constant.MaxMultipartMemory

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (需要底层 *zap.Logger)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	logger.Debug("已注册全局中间件")

	// 认证中间件按路由挂载，公开读接口不强制带令牌
	authn := middleware.Authenticate(tokens, userRepo, logger)

	v1 := router.Group("/api/v1/content")

	controllers.Auth.RegisterRoutes(v1, authn)
	controllers.User.RegisterRoutes(v1, authn)
	controllers.Post.RegisterRoutes(v1, authn)
	controllers.Category.RegisterRoutes(v1, authn)
	controllers.Tag.RegisterRoutes(v1, authn)
	controllers.Event.RegisterRoutes(v1, authn)
	controllers.Upload.RegisterRoutes(v1, authn)
	controllers.YouTube.RegisterRoutes(v1)
	logger.Info("所有控制器路由已注册到 /api/v1/content 分组")

	// Swagger UI：/swagger/index.html
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
