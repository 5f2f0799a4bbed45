package response

import "github.com/gin-gonic/gin"

// 统一响应包装。成功时 code 为 0，错误时 code 为下方业务错误码，
// message 面向调用方，details 仅在 4xx/502 且确有可操作信息时携带；
// 5xx 一律不回传内部错误文本。

// 业务错误码，按 HTTP 状态档位分段
const (
	ErrCodeClientInvalidInput     = 40001 // 参数缺失或格式错误
	ErrCodeClientUnauthorized     = 40101 // 缺失/无效/过期的凭证
	ErrCodeClientForbidden        = 40301 // 角色不满足路由白名单
	ErrCodeClientResourceNotFound = 40401 // 资源不存在
	ErrCodeClientConflict         = 40901 // 唯一性冲突 / 重复授权
	ErrCodeServerInternal         = 50000 // 未预期的内部错误
	ErrCodeServerUpstream         = 50201 // 外部依赖（媒体存储、视频 API）失败
)

// APIResponse 所有接口的统一响应结构
type APIResponse[T any] struct {
	Code    int    `json:"code"`              // 0 表示成功
	Message string `json:"message,omitempty"` // 成功或错误消息
	Data    T      `json:"data,omitempty"`    // 负载，错误时省略
	Details string `json:"details,omitempty"` // 补充错误细节，可选
}

// RespondSuccess 以 200 返回成功负载
func RespondSuccess[T any](c *gin.Context, data T, message string) {
	c.JSON(200, APIResponse[T]{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// RespondCreated 以 201 返回新建资源
func RespondCreated[T any](c *gin.Context, data T, message string) {
	c.JSON(201, APIResponse[T]{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// RespondNoContent 以 204 返回，无响应体（删除类接口）
func RespondNoContent(c *gin.Context) {
	c.Status(204)
}

// RespondError 以给定 HTTP 状态码返回错误
func RespondError(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, APIResponse[any]{
		Code:    code,
		Message: message,
	})
}

// RespondErrorDetail 带 details 的错误响应，用于 4xx 与 502
func RespondErrorDetail(c *gin.Context, httpStatus int, code int, message string, details string) {
	c.JSON(httpStatus, APIResponse[any]{
		Code:    code,
		Message: message,
		Details: details,
	})
}
