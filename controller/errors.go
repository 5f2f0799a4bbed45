package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/response"
)

// respondServiceError 把服务层错误统一翻译成 HTTP 响应。
// 未识别的错误一律按 500 处理且不回传内部错误文本。
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "资源不存在")
	case errors.Is(err, myErrors.ErrRelatedEntityMissing):
		response.RespondErrorDetail(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound,
			"关联的目标资源不存在", err.Error())
	case errors.Is(err, myErrors.ErrIdentityTaken):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientConflict, "用户名或邮箱已被占用")
	case errors.Is(err, myErrors.ErrInvalidCredentials):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无效的凭证")
	case errors.Is(err, myErrors.ErrRoleAlreadyAssigned):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientConflict, "用户已持有该角色")
	case errors.Is(err, myErrors.ErrRoleNotAssigned):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "用户未持有该角色")
	case errors.Is(err, myErrors.ErrCategoryHasChildren):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "分类仍有子分类，无法删除")
	case errors.Is(err, myErrors.ErrCategoryParentCycle):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "不能把分类挂载到自身或其子孙分类下")
	case errors.Is(err, myErrors.ErrUpstreamService):
		response.RespondErrorDetail(c, http.StatusBadGateway, response.ErrCodeServerUpstream,
			"外部服务暂时不可用", err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误")
	}
}

// parseIDParam 解析路径里的数字 ID，非法时返回 0
func parseIDParam(c *gin.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
