package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/response"
	"github.com/Xushengqwer/content_service/service"
)

// PostController 帖子控制器
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// CreatePost 创建帖子
// @Summary      创建帖子
// @Description  创建帖子并同步分类 / 标签关联。category_ids / tag_ids 接受数字或数字字符串，非法项被丢弃；
// @Description  引用了不存在的分类或标签时整次创建失败。第一个分类是主分类。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "帖子信息"
// @Success      201 {object} vo.PostResponseWrapper "创建成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.EmptyResponseWrapper "引用了不存在的分类或标签"
// @Failure      500 {object} vo.EmptyResponseWrapper "服务器内部错误"
// @Security     BearerAuth
// @Router       /api/v1/content/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var reqDTO dto.CreatePostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.postService.CreatePost(c.Request.Context(), &reqDTO, middleware.OperatorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, result, "创建成功")
}

// GetPost 获取单个帖子
// @Summary      获取帖子详情
// @Description  返回帖子及其作者、分类（含主分类标记）、标签；每次读取累加一次浏览量。
// @Tags         posts (帖子)
// @Produce      json
// @Param        id path int true "帖子 ID"
// @Success      200 {object} vo.PostResponseWrapper "成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子不存在"
// @Router       /api/v1/content/posts/{id} [get]
func (ctrl *PostController) GetPost(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID")
		return
	}

	result, err := ctrl.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// ListPosts 获取帖子列表
// @Summary      获取帖子列表（分页）
// @Tags         posts (帖子)
// @Produce      json
// @Param        page query int false "页码 (从1开始)" default(1)
// @Param        pageSize query int false "每页数量" default(20)
// @Param        status query string false "帖子状态" Enums(draft,pending,published,rejected)
// @Param        authorId query int false "按作者筛选"
// @Success      200 {object} vo.PostListResponseWrapper "成功"
// @Router       /api/v1/content/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	var status *enums.PostStatus
	if raw := c.Query("status"); raw != "" {
		parsed := enums.PostStatus(raw)
		if !parsed.Valid() {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子状态")
			return
		}
		status = &parsed
	}

	var authorID *uint64
	if raw := c.Query("authorId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的作者 ID")
			return
		}
		authorID = &parsed
	}

	result, _, err := ctrl.postService.ListPosts(c.Request.Context(), status, authorID, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "")
}

// UpdatePost 更新帖子
// @Summary      更新帖子
// @Description  部分字段更新。category_ids / tag_ids 出现时重建对应关联：空列表清空关联，
// @Description  引用不存在的目标时整个事务回滚。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        id path int true "帖子 ID"
// @Param        request body dto.UpdatePostRequest true "要更新的字段"
// @Success      200 {object} vo.PostResponseWrapper "更新成功"
// @Failure      400 {object} vo.EmptyResponseWrapper "无效的请求参数"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子不存在或引用了不存在的分类 / 标签"
// @Security     BearerAuth
// @Router       /api/v1/content/posts/{id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID")
		return
	}

	var reqDTO dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondErrorDetail(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数", err.Error())
		return
	}

	result, err := ctrl.postService.UpdatePost(c.Request.Context(), id, &reqDTO)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, result, "更新成功")
}

// DeletePost 删除帖子
// @Summary      删除帖子
// @Tags         posts (帖子)
// @Param        id path int true "帖子 ID"
// @Success      204 "删除成功"
// @Failure      404 {object} vo.EmptyResponseWrapper "帖子不存在"
// @Security     BearerAuth
// @Router       /api/v1/content/posts/{id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子 ID")
		return
	}

	if err := ctrl.postService.DeletePost(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 PostController 的路由。
// 读公开；写需要 editor 或 manager 角色。
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup, authn gin.HandlerFunc) {
	editorial := middleware.RequireRoles("editor", "manager")

	posts := group.Group("/posts")
	{
		posts.GET("", ctrl.ListPosts)   // GET /api/v1/content/posts
		posts.GET("/:id", ctrl.GetPost) // GET /api/v1/content/posts/:id

		posts.POST("", authn, editorial, ctrl.CreatePost)       // POST   /api/v1/content/posts
		posts.PUT("/:id", authn, editorial, ctrl.UpdatePost)    // PUT    /api/v1/content/posts/:id
		posts.DELETE("/:id", authn, editorial, ctrl.DeletePost) // DELETE /api/v1/content/posts/:id
	}
}
