package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// TagController 标签控制器
type TagController struct {
	tagService service.TagService
}

// NewTagController 构造函数，用于创建 TagController 实例
func NewTagController(tagService service.TagService) *TagController {
	return &TagController{tagService: tagService}
}

// CreateTag 创建标签
// @Summary      创建标签
// @Tags         tags (标签)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTagRequest true "标签信息"
// @Success      201 {object} vo.TagResponseWrapper "创建成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Security     BearerAuth
// @Router       /api/v1/content/tags [post]
func (ctrl *TagController) CreateTag(c *gin.Context) {
	var reqDTO dto.CreateTagRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.tagService.CreateTag(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result, "创建成功")
}

// GetTag 获取单个标签
// @Summary      获取标签详情
// @Tags         tags (标签)
// @Produce      json
// @Param        id path int true "标签 ID"
// @Success      200 {object} vo.TagResponseWrapper "成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "标签不存在"
// @Router       /api/v1/content/tags/{id} [get]
func (ctrl *TagController) GetTag(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的标签 ID")
		return
	}

	result, err := ctrl.tagService.GetTagByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// ListTags 获取标签列表
// @Summary      获取全部标签
// @Tags         tags (标签)
// @Produce      json
// @Success      200 {object} vo.TagListResponseWrapper "成功"
// @Router       /api/v1/content/tags [get]
func (ctrl *TagController) ListTags(c *gin.Context) {
	result, err := ctrl.tagService.ListTags(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// UpdateTag 更新标签
// @Summary      更新标签
// @Tags         tags (标签)
// @Accept       json
// @Produce      json
// @Param        id path int true "标签 ID"
// @Param        request body dto.UpdateTagRequest true "要更新的字段"
// @Success      200 {object} vo.TagResponseWrapper "更新成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "标签不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/tags/{id} [put]
func (ctrl *TagController) UpdateTag(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的标签 ID")
		return
	}

	var reqDTO dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.tagService.UpdateTag(c.Request.Context(), id, &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "更新成功")
}

// DeleteTag 删除标签
// @Summary      删除标签
// @Description  删除标签及其所有帖子关联。
// @Tags         tags (标签)
// @Param        id path int true "标签 ID"
// @Success      204 "删除成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "标签不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/tags/{id} [delete]
func (ctrl *TagController) DeleteTag(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的标签 ID")
		return
	}

	if err := ctrl.tagService.DeleteTag(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 TagController 的路由。
// 读公开；写需要 editor 或 manager 角色。
func (ctrl *TagController) RegisterRoutes(group *gin.RouterGroup, authn gin.HandlerFunc) {
	editorial := middleware.RequireRoles("editor", "manager")

	tags := group.Group("/tags")
	{
		tags.GET("", ctrl.ListTags)
		tags.GET("/:id", ctrl.GetTag)

		tags.POST("", authn, editorial, ctrl.CreateTag)
		tags.PUT("/:id", authn, editorial, ctrl.UpdateTag)
		tags.DELETE("/:id", authn, editorial, ctrl.DeleteTag)
	}
}
