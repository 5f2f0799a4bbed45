package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// CategoryController 分类树控制器
type CategoryController struct {
	categoryService service.CategoryService
}

// NewCategoryController 构造函数，用于创建 CategoryController 实例
func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      201 {object} vo.CategoryResponseWrapper "创建成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.EmptyResponseWrapper "父分类不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var reqDTO dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.categoryService.CreateCategory(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result, "创建成功")
}

// GetCategory 获取单个分类
// @Summary      获取分类详情
// @Tags         categories (分类)
// @Produce      json
// @Param        id path int true "分类 ID"
// @Success      200 {object} vo.CategoryResponseWrapper "成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "分类不存在"
// @Router       /api/v1/content/categories/{id} [get]
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的分类 ID")
		return
	}

	result, err := ctrl.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// ListCategories 获取分类列表
// @Summary      获取全部分类
// @Tags         categories (分类)
// @Produce      json
// @Success      200 {object} vo.CategoryListResponseWrapper "成功"
// @Router       /api/v1/content/categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	result, err := ctrl.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// UpdateCategory 更新分类
// @Summary      更新分类
// @Description  部分字段更新。parent_id 三态：缺省不动、null 脱离父级、正整数重挂载；
// @Description  重挂载到自身或子孙分类返回 400。
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Param        id path int true "分类 ID"
// @Param        request body dto.UpdateCategoryRequest true "要更新的字段"
// @Success      200 {object} vo.CategoryResponseWrapper "更新成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数或成环的父子关系"
// @Failure      404 {object} vo.EmptyResponseWrapper "分类或目标父分类不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的分类 ID")
		return
	}

	var reqDTO dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.categoryService.UpdateCategory(c.Request.Context(), id, &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "更新成功")
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Description  仍有子分类的分类不能删除，返回 400。
// @Tags         categories (分类)
// @Param        id path int true "分类 ID"
// @Success      204 "删除成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "分类仍有子分类"
// @Failure      404 {object} vo.EmptyResponseWrapper "分类不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的分类 ID")
		return
	}

	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 CategoryController 的路由。
// 读公开；写只对 manager 开放。
func (ctrl *CategoryController) RegisterRoutes(group *gin.RouterGroup, authn gin.HandlerFunc) {
	managerOnly := middleware.RequireRoles("manager")

	categories := group.Group("/categories")
	{
		categories.GET("", ctrl.ListCategories) // GET /api/v1/content/categories
		categories.GET("/:id", ctrl.GetCategory)

		categories.POST("", authn, managerOnly, ctrl.CreateCategory)
		categories.PUT("/:id", authn, managerOnly, ctrl.UpdateCategory)
		categories.DELETE("/:id", authn, managerOnly, ctrl.DeleteCategory)
	}
}
