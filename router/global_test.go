package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/controller"
	"github.com/Xushengqwer/content_service/security"
)

func newRouterForTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)

	cfg := &appConfig.ContentConfig{
		ServerConfig: sharedConfig.ServerConfig{RequestTimeout: 5},
	}
	tokens := security.NewTokenManager(&appConfig.AuthConfig{JWTSecret: "test-secret"})

	// 只验证路由注册与公开端点，服务层不会被触达
	controllers := &Controllers{
		Auth:     controller.NewAuthController(nil),
		User:     controller.NewUserController(nil),
		Post:     controller.NewPostController(nil),
		Category: controller.NewCategoryController(nil),
		Tag:      controller.NewTagController(nil),
		Event:    controller.NewEventController(nil),
		Upload:   controller.NewUploadController(nil),
		YouTube:  controller.NewYouTubeController(nil),
	}
	return SetupRouter(logger, cfg, tokens, nil, controllers)
}

func TestHealthEndpoint(t *testing.T) {
	engine := newRouterForTest(t)

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRouteTable(t *testing.T) {
	engine := newRouterForTest(t)

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[fmt.Sprintf("%s %s", route.Method, route.Path)] = true
	}

	expected := []string{
		"POST /api/v1/content/auth/register",
		"POST /api/v1/content/auth/login",
		"GET /api/v1/content/auth/me",
		"GET /api/v1/content/youtube/posts",
		"GET /api/v1/content/posts",
		"GET /api/v1/content/categories",
		"GET /health",
	}
	for _, want := range expected {
		assert.True(t, registered[want], "缺少路由: %s", want)
	}
}
