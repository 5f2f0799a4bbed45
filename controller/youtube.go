package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// YouTubeController 频道视频列表代理控制器
type YouTubeController struct {
	youtubeService service.YouTubeService
}

// NewYouTubeController 构造函数，用于创建 YouTubeController 实例
func NewYouTubeController(youtubeService service.YouTubeService) *YouTubeController {
	return &YouTubeController{youtubeService: youtubeService}
}

// ListVideos 获取频道视频列表
// @Summary      获取频道最新视频
// @Description  服务端代理 YouTube Data API，API Key 不出服务端。channelId 缺省用配置的默认频道；
// @Description  上游失败返回 502。
// @Tags         youtube (视频)
// @Produce      json
// @Param        channelId query string false "频道 ID"
// @Param        limit query int false "返回数量（上限 50）" default(10)
// @Success      200 {object} vo.YouTubeVideoListResponseWrapper "成功"
// @Failure      502 {object} vo.EmptyResponseWrapper "上游服务不可用"
// @Router       /api/v1/content/youtube/posts [get]
func (ctrl *YouTubeController) ListVideos(c *gin.Context) {
	var reqDTO dto.YouTubePostsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数", err.Error())
		return
	}

	result, err := ctrl.youtubeService.ListChannelVideos(c.Request.Context(), reqDTO.ChannelID, reqDTO.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// RegisterRoutes 注册 YouTubeController 的路由（公开）
func (ctrl *YouTubeController) RegisterRoutes(group *gin.RouterGroup) {
	youtube := group.Group("/youtube")
	{
		youtube.GET("/posts", ctrl.ListVideos) // GET /api/v1/content/youtube/posts
	}
}
