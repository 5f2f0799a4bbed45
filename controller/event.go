package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// EventController 活动控制器
type EventController struct {
	eventService service.EventService
}

// NewEventController 构造函数，用于创建 EventController 实例
func NewEventController(eventService service.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent 创建活动
// @Summary      创建活动
// @Description  结束时间必须不早于开始时间。状态（upcoming/ongoing/finished）按当前时间推导，不落库。
// @Tags         events (活动)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateEventRequest true "活动信息"
// @Success      201 {object} vo.EventResponseWrapper "创建成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Security     BearerAuth
// @Router       /api/v1/content/events [post]
func (ctrl *EventController) CreateEvent(c *gin.Context) {
	var reqDTO dto.CreateEventRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.eventService.CreateEvent(c.Request.Context(), &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result, "创建成功")
}

// GetEvent 获取单个活动
// @Summary      获取活动详情
// @Tags         events (活动)
// @Produce      json
// @Param        id path int true "活动 ID"
// @Success      200 {object} vo.EventResponseWrapper "成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "活动不存在"
// @Router       /api/v1/content/events/{id} [get]
func (ctrl *EventController) GetEvent(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的活动 ID")
		return
	}

	result, err := ctrl.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// ListEvents 获取活动列表
// @Summary      获取全部活动
// @Tags         events (活动)
// @Produce      json
// @Success      200 {object} vo.EventListResponseWrapper "成功"
// @Router       /api/v1/content/events [get]
func (ctrl *EventController) ListEvents(c *gin.Context) {
	result, err := ctrl.eventService.ListEvents(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// UpdateEvent 更新活动
// @Summary      更新活动
// @Tags         events (活动)
// @Accept       json
// @Produce      json
// @Param        id path int true "活动 ID"
// @Param        request body dto.UpdateEventRequest true "要更新的字段"
// @Success      200 {object} vo.EventResponseWrapper "更新成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "活动不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/events/{id} [put]
func (ctrl *EventController) UpdateEvent(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的活动 ID")
		return
	}

	var reqDTO dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.eventService.UpdateEvent(c.Request.Context(), id, &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "更新成功")
}

// DeleteEvent 删除活动
// @Summary      删除活动
// @Tags         events (活动)
// @Param        id path int true "活动 ID"
// @Success      204 "删除成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "活动不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/events/{id} [delete]
func (ctrl *EventController) DeleteEvent(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的活动 ID")
		return
	}

	if err := ctrl.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 EventController 的路由。
// 读公开；写只对 manager 开放。
func (ctrl *EventController) RegisterRoutes(group *gin.RouterGroup, authn gin.HandlerFunc) {
	managerOnly := middleware.RequireRoles("manager")

	events := group.Group("/events")
	{
		events.GET("", ctrl.ListEvents)
		events.GET("/:id", ctrl.GetEvent)

		events.POST("", authn, managerOnly, ctrl.CreateEvent)
		events.PUT("/:id", authn, managerOnly, ctrl.UpdateEvent)
		events.DELETE("/:id", authn, managerOnly, ctrl.DeleteEvent)
	}
}
