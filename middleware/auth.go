package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/security"
)

// Authenticate 校验 Bearer Token 并把用户身份写进请求上下文。
// 角色每次都从数据库现读，授权变更即时生效，不等令牌过期。
func Authenticate(tokens *security.TokenManager, userRepo mysql.UserRepository, logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少或格式错误的认证头")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, _, err := tokens.Verify(tokenString)
		if err != nil {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无效或过期的令牌")
			c.Abort()
			return
		}

		user, err := userRepo.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "令牌对应的用户不存在")
			} else {
				logger.Error("认证时加载用户失败", zap.Uint64("userID", userID), zap.Error(err))
				response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误")
			}
			c.Abort()
			return
		}
		if user.Status != enums.UserStatusActive {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "账号不可用")
			c.Abort()
			return
		}

		c.Set(constant.ContextKeyUserID, user.ID)
		c.Set(constant.ContextKeyUsername, user.Username)
		c.Set(constant.ContextKeyRoles, user.RoleNames())
		c.Next()
	}
}

// RequireRoles 基于角色的访问控制。
// allowed 为空表示任何已认证用户均可通过；角色名匹配大小写不敏感。
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[strings.ToLower(role)] = struct{}{}
	}

	return func(c *gin.Context) {
		rolesValue, exists := c.Get(constant.ContextKeyRoles)
		if !exists {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "未认证")
			c.Abort()
			return
		}
		if len(allowedSet) == 0 {
			c.Next()
			return
		}

		roles, _ := rolesValue.([]string)
		for _, role := range roles {
			if _, ok := allowedSet[strings.ToLower(role)]; ok {
				c.Next()
				return
			}
		}

		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientForbidden, "没有执行该操作的权限")
		c.Abort()
	}
}

// OperatorID 从请求上下文取当前登录用户 ID，未认证时返回 0。
func OperatorID(c *gin.Context) uint64 {
	value, exists := c.Get(constant.ContextKeyUserID)
	if !exists {
		return 0
	}
	id, _ := value.(uint64)
	return id
}
