package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// AuthController 注册 / 登录控制器
type AuthController struct {
	authService service.AuthService
}

// NewAuthController 构造函数，用于创建 AuthController 实例
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register 注册新用户
// @Summary      用户注册
// @Description  注册新用户，成功后自动授予默认角色并返回 JWT。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} vo.AuthResultResponseWrapper "注册成功，包含令牌与用户信息"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Failure      409 {object} vo.EmptyResponseWrapper "用户名或邮箱已被占用"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var reqDTO dto.RegisterRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.authService.Register(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result, "注册成功")
}

// Login 用户登录
// @Summary      用户登录
// @Description  用用户名或邮箱加密码换取 JWT。凭证错误时不区分是哪一项错误。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录凭证"
// @Success      200 {object} vo.AuthResultResponseWrapper "登录成功，包含令牌与用户信息"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.EmptyResponseWrapper "无效的凭证"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var reqDTO dto.LoginRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "登录成功")
}

// Me 查询当前登录用户
// @Summary      当前用户资料
// @Description  按令牌返回当前登录用户的资料，含角色与发帖数。
// @Tags         auth (认证)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.UserResponseWrapper "成功"
// @Failure      401 {object} vo.EmptyResponseWrapper "未认证"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Router       /api/v1/content/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	result, err := ctrl.authService.GetProfile(c.Request.Context(), middleware.OperatorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// RegisterRoutes 注册 AuthController 的路由。注册 / 登录公开，/me 需要令牌。
func (ctrl *AuthController) RegisterRoutes(group *gin.RouterGroup, authn gin.HandlerFunc) {
	auth := group.Group("/auth")
	{
		auth.POST("/register", ctrl.Register) // POST /api/v1/content/auth/register
		auth.POST("/login", ctrl.Login)       // POST /api/v1/content/auth/login
		auth.GET("/me", authn, ctrl.Me)       // GET  /api/v1/content/auth/me
	}
}
