package service

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/repo/redis"
)

// PostService 定义了帖子核心业务逻辑的接口。
type PostService interface {
	// CreatePost 处理发布新帖子的业务流程。
	// - 帖子本体先落库，分类 / 标签关联随后在事务里同步；
	//   关联同步失败时物理删除刚创建的帖子（补偿），对外表现为整次创建失败。
	// - 状态为 pending 时异步投递待审核事件。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest, operatorID uint64) (*vo.PostVO, error)

	// GetPostByID 获取单个帖子（带作者、分类、标签）。
	// - 每次读取在 Redis 累加一次浏览量，累加失败不影响读取。
	GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error)

	// ListPosts 分页检索帖子列表，支持状态 / 作者筛选。
	ListPosts(ctx context.Context, status *enums.PostStatus, authorID *uint64, page, pageSize int) ([]vo.PostVO, int64, error)

	// UpdatePost 部分字段更新帖子；CategoryIDs / TagIDs 出现时重建对应关联。
	// - 关联同步失败时整个事务回滚，帖子字段也不更新。
	UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error)

	// DeletePost 软删帖子并异步投递删除事件。
	DeletePost(ctx context.Context, id uint64) error
}

type postService struct {
	db           *gorm.DB
	postRepo     mysql.PostRepository
	relationRepo mysql.PostRelationRepository
	postViewRepo redis.PostViewRepository
	kafkaSvc     *producer.KafkaProducer
	logger       *core.ZapLogger
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	relationRepo mysql.PostRelationRepository,
	postViewRepo redis.PostViewRepository,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:           db,
		postRepo:     postRepo,
		relationRepo: relationRepo,
		postViewRepo: postViewRepo,
		kafkaSvc:     kafkaSvc,
		logger:       logger,
	}
}

// CreatePost 实现帖子创建流程。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest, operatorID uint64) (*vo.PostVO, error) {
	// 1. 组装实体。作者缺省取当前操作者。
	authorID := uint64(req.AuthorID)
	if authorID == 0 {
		authorID = operatorID
	}
	status := enums.PostStatusDraft
	if req.Status != "" {
		status = enums.PostStatus(req.Status)
	}

	post := &entities.Post{
		Title:        req.Title,
		Slug:         req.Slug,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		ThumbnailURL: req.ThumbnailURL,
		Status:       status,
		AuthorID:     authorID,
	}
	if status == enums.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	// 2. 帖子本体落库
	if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
		s.logger.Error("创建帖子失败", zap.Error(err))
		return nil, err
	}

	// 3. 同步分类 / 标签关联（单事务）。失败则补偿删除刚创建的帖子。
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := s.relationRepo.SyncPostCategories(ctx, tx, post.ID, req.CategoryIDs.Normalize()); txErr != nil {
			return txErr
		}
		return s.relationRepo.SyncPostTags(ctx, tx, post.ID, req.TagIDs.Normalize())
	})
	if err != nil {
		s.logger.Warn("帖子关联同步失败，执行补偿删除",
			zap.Uint64("postID", post.ID), zap.Error(err))
		if cleanupErr := s.postRepo.HardDeletePost(ctx, post.ID); cleanupErr != nil {
			// 补偿失败只能留痕，残留数据靠人工或后台清理
			s.logger.Error("补偿删除帖子失败，存在残留数据",
				zap.Uint64("postID", post.ID), zap.Error(cleanupErr))
		}
		return nil, err
	}

	// 4. pending 状态投递待审核事件，失败不影响创建结果
	if post.Status == enums.PostStatusPending {
		if sendErr := s.kafkaSvc.SendPostPendingReviewEvent(ctx, post.ID, post.Title, post.Slug, post.AuthorID); sendErr != nil {
			s.logger.Error("投递帖子待审核事件失败", zap.Uint64("postID", post.ID), zap.Error(sendErr))
		}
	}

	return s.GetPostByID(ctx, post.ID)
}

// GetPostByID 实现单帖读取。
func (s *postService) GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, primaryID, err := s.postRepo.GetCategoriesForPost(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.postRepo.GetTagsForPost(ctx, id)
	if err != nil {
		return nil, err
	}

	// 浏览量只打 Redis，后台任务定期回写 MySQL；Redis 异常不阻断读取。
	// Seeder 等离线场景不接 Redis，postViewRepo 允许为 nil。
	if s.postViewRepo != nil {
		if total, incrErr := s.postViewRepo.IncrementViewCount(ctx, id); incrErr != nil {
			s.logger.Warn("累加帖子浏览量失败", zap.Uint64("postID", id), zap.Error(incrErr))
		} else if total > post.ViewCount {
			post.ViewCount = total
		}
	}

	return vo.NewPostVO(post, categories, primaryID, tags), nil
}

func (s *postService) ListPosts(ctx context.Context, status *enums.PostStatus, authorID *uint64, page, pageSize int) ([]vo.PostVO, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	posts, total, err := s.postRepo.ListPosts(ctx, status, authorID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]vo.PostVO, 0, len(posts))
	for _, post := range posts {
		categories, primaryID, relErr := s.postRepo.GetCategoriesForPost(ctx, post.ID)
		if relErr != nil {
			return nil, 0, relErr
		}
		tags, relErr := s.postRepo.GetTagsForPost(ctx, post.ID)
		if relErr != nil {
			return nil, 0, relErr
		}
		result = append(result, *vo.NewPostVO(post, categories, primaryID, tags))
	}
	return result, total, nil
}

// UpdatePost 实现帖子更新。字段更新先落库，关联重建随后按序执行，
// 不包事务也不做创建路径那样的补偿删除：关联目标缺失时旧关联已删、
// 新关联不插，关联表对外呈现为空。
func (s *postService) UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error) {
	existing, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.AuthorID != nil && uint64(*req.AuthorID) > 0 {
		updates["author_id"] = uint64(*req.AuthorID)
	}

	becamePending := false
	if req.Status != nil {
		newStatus := enums.PostStatus(*req.Status)
		updates["status"] = newStatus
		// 首次发布补记发布时间
		if newStatus == enums.PostStatusPublished && existing.PublishedAt == nil {
			now := time.Now()
			updates["published_at"] = &now
		}
		becamePending = newStatus == enums.PostStatusPending && existing.Status != enums.PostStatusPending
	}

	if len(updates) > 0 {
		if err := s.postRepo.UpdatePost(ctx, s.db, id, updates); err != nil {
			return nil, err
		}
	}
	if req.CategoryIDs != nil {
		if err := s.relationRepo.SyncPostCategories(ctx, s.db, id, req.CategoryIDs.Normalize()); err != nil {
			return nil, err
		}
	}
	if req.TagIDs != nil {
		if err := s.relationRepo.SyncPostTags(ctx, s.db, id, req.TagIDs.Normalize()); err != nil {
			return nil, err
		}
	}

	if becamePending {
		updated, loadErr := s.postRepo.GetPostByID(ctx, id)
		if loadErr == nil {
			if sendErr := s.kafkaSvc.SendPostPendingReviewEvent(ctx, updated.ID, updated.Title, updated.Slug, updated.AuthorID); sendErr != nil {
				s.logger.Error("投递帖子待审核事件失败", zap.Uint64("postID", id), zap.Error(sendErr))
			}
		}
	}

	return s.GetPostByID(ctx, id)
}

func (s *postService) DeletePost(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.postRepo.DeletePost(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	if sendErr := s.kafkaSvc.SendPostDeleteEvent(ctx, id); sendErr != nil {
		s.logger.Error("投递帖子删除事件失败", zap.Uint64("postID", id), zap.Error(sendErr))
	}
	return nil
}
