package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// UserController 用户与角色管理控制器（管理端）
type UserController struct {
	userService service.UserService
}

// NewUserController 构造函数，用于创建 UserController 实例
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser 创建用户
// @Summary      创建用户
// @Description  管理端创建用户，可同时指定状态与角色列表。角色列表里有不存在的角色名时整个请求失败。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "用户信息"
// @Success      201 {object} vo.UserResponseWrapper "创建成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.EmptyResponseWrapper "角色列表里有不存在的角色"
// @Failure      409 {object} vo.EmptyResponseWrapper "用户名或邮箱已被占用"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/content/users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var reqDTO dto.CreateUserRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.userService.CreateUser(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result, "创建成功")
}

// GetUser 获取单个用户
// @Summary      获取用户详情
// @Tags         users (用户)
// @Produce      json
// @Param        id path int true "用户 ID"
// @Success      200 {object} vo.UserResponseWrapper "成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "用户不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/users/{id} [get]
func (ctrl *UserController) GetUser(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}

	result, err := ctrl.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// ListUsers 获取用户列表
// @Summary      获取用户列表（分页）
// @Tags         users (用户)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" default(1)
// @Param        pageSize query int false "每页数量" default(20)
// @Success      200 {object} vo.UserListResponseWrapper "成功"
// @Security     BearerAuth
// @Router       /api/v1/content/users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, _, err := ctrl.userService.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// UpdateUser 更新用户
// @Summary      更新用户
// @Description  部分字段更新；roles 字段出现时整组替换该用户的角色授权。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        id path int true "用户 ID"
// @Param        request body dto.UpdateUserRequest true "要更新的字段"
// @Success      200 {object} vo.UserResponseWrapper "更新成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.EmptyResponseWrapper "用户不存在或角色列表里有不存在的角色"
// @Failure      409 {object} vo.EmptyResponseWrapper "用户名或邮箱已被占用"
// @Security     BearerAuth
// @Router       /api/v1/content/users/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}

	var reqDTO dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.userService.UpdateUser(c.Request.Context(), id, &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "更新成功")
}

// DeleteUser 删除用户
// @Summary      删除用户
// @Tags         users (用户)
// @Param        id path int true "用户 ID"
// @Success      204 "删除成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "用户不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}

	if err := ctrl.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// AssignRole 授予角色
// @Summary      给用户授予角色
// @Description  角色名匹配大小写不敏感；重复授予返回 409。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        id path int true "用户 ID"
// @Param        request body dto.AssignRoleRequest true "角色名"
// @Success      200 {object} vo.UserResponseWrapper "授予成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "用户或角色不存在"
// @Failure      409 {object} vo.EmptyResponseWrapper "用户已持有该角色"
// @Security     BearerAuth
// @Router       /api/v1/content/users/{id}/roles [post]
func (ctrl *UserController) AssignRole(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}

	var reqDTO dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.userService.AssignRole(c.Request.Context(), id, reqDTO.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "授予成功")
}

// RemoveRole 移除角色
// @Summary      移除用户的一个角色
// @Tags         users (用户)
// @Produce      json
// @Param        id path int true "用户 ID"
// @Param        role path string true "角色名（大小写不敏感）"
// @Success      200 {object} vo.UserResponseWrapper "移除成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的用户 ID 或角色名"
// @Failure      404 {object} vo.EmptyResponseWrapper "用户或角色不存在，或用户未持有该角色"
// @Security     BearerAuth
// @Router       /api/v1/content/users/{id}/roles/{role} [delete]
func (ctrl *UserController) RemoveRole(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的用户 ID")
		return
	}
	roleName := c.Param("role")
	if roleName == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的角色名")
		return
	}

	result, err := ctrl.userService.RemoveRole(c.Request.Context(), id, roleName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "移除成功")
}

// ListRoles 获取全部角色
// @Summary      获取角色列表
// @Tags         users (用户)
// @Produce      json
// @Success      200 {object} vo.RoleListResponseWrapper "成功"
// @Security     BearerAuth
// @Router       /api/v1/content/roles [get]
func (ctrl *UserController) ListRoles(c *gin.Context) {
	result, err := ctrl.userService.ListRoles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// RegisterRoutes 注册 UserController 的路由。
// 用户与角色管理全部只对 manager 开放。
func (ctrl *UserController) RegisterRoutes(group *gin.RouterGroup, authn gin.HandlerFunc) {
	managerOnly := middleware.RequireRoles("manager")

	users := group.Group("/users", authn, managerOnly)
	{
		users.POST("", ctrl.CreateUser)                  // POST   /api/v1/content/users
		users.GET("", ctrl.ListUsers)                    // GET    /api/v1/content/users
		users.GET("/:id", ctrl.GetUser)                  // GET    /api/v1/content/users/:id
		users.PUT("/:id", ctrl.UpdateUser)               // PUT    /api/v1/content/users/:id
		users.DELETE("/:id", ctrl.DeleteUser)            // DELETE /api/v1/content/users/:id
		users.POST("/:id/roles", ctrl.AssignRole)        // POST   /api/v1/content/users/:id/roles
		users.DELETE("/:id/roles/:role", ctrl.RemoveRole) // DELETE /api/v1/content/users/:id/roles/:role
	}

	group.GET("/roles", authn, managerOnly, ctrl.ListRoles) // GET /api/v1/content/roles
}
