package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// UploadController 媒体上传控制器
type UploadController struct {
	uploadService service.UploadService
}

// NewUploadController 构造函数，用于创建 UploadController 实例
func NewUploadController(uploadService service.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// Upload 上传文件
// @Summary      上传媒体文件
// @Description  文件走 multipart 的 file 字段，单文件上限 10MB。文件托管在媒体宿主，本服务只留记录；
// @Description  宿主失败返回 502。
// @Tags         uploads (上传)
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "文件"
// @Param        folder formData string false "远端目录"
// @Param        resource_type formData string false "资源类型" Enums(image,video,raw,auto)
// @Success      201 {object} vo.UploadResponseWrapper "上传成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "缺少文件或文件过大"
// @Failure      502 {object} vo.EmptyResponseWrapper "媒体宿主不可用"
// @Security     BearerAuth
// @Router       /api/v1/content/uploads [post]
func (ctrl *UploadController) Upload(c *gin.Context) {
	var reqDTO dto.UploadRequest
	if err := c.ShouldBind(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少 file 字段")
		return
	}
	if fileHeader.Size > constant.MaxUploadSizeBytes {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput,
			"文件过大", "单文件上限 10MB")
		return
	}

	result, err := ctrl.uploadService.UploadFile(c.Request.Context(), fileHeader, &reqDTO, middleware.OperatorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result, "上传成功")
}

// GetUpload 获取单条上传记录
// @Summary      获取上传记录
// @Tags         uploads (上传)
// @Produce      json
// @Param        id path int true "记录 ID"
// @Success      200 {object} vo.UploadResponseWrapper "成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "记录不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/uploads/{id} [get]
func (ctrl *UploadController) GetUpload(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的记录 ID")
		return
	}

	result, err := ctrl.uploadService.GetUploadByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// ListUploads 获取上传记录列表
// @Summary      获取上传记录列表（分页）
// @Tags         uploads (上传)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" default(1)
// @Param        pageSize query int false "每页数量" default(20)
// @Success      200 {object} vo.UploadResponseWrapper "成功"
// @Security     BearerAuth
// @Router       /api/v1/content/uploads [get]
func (ctrl *UploadController) ListUploads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, _, err := ctrl.uploadService.ListUploads(c.Request.Context(), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// DeleteUpload 删除上传记录
// @Summary      删除上传记录
// @Description  先销毁远端资源，再删本地记录。
// @Tags         uploads (上传)
// @Param        id path int true "记录 ID"
// @Success      204 "删除成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "记录不存在"
// @Failure      502 {object} vo.EmptyResponseWrapper "媒体宿主不可用"
// @Security     BearerAuth
// @Router       /api/v1/content/uploads/{id} [delete]
func (ctrl *UploadController) DeleteUpload(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的记录 ID")
		return
	}

	if err := ctrl.uploadService.DeleteUpload(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 UploadController 的路由。
// 全部需要 editor 或 manager 角色。
func (ctrl *UploadController) RegisterRoutes(group *gin.RouterGroup, authn gin.HandlerFunc) {
	editorial := middleware.RequireRoles("editor", "manager")

	uploads := group.Group("/uploads", authn, editorial)
	{
		uploads.POST("", ctrl.Upload)
		uploads.GET("", ctrl.ListUploads)
		uploads.GET("/:id", ctrl.GetUpload)
		uploads.DELETE("/:id", ctrl.DeleteUpload)
	}
}
