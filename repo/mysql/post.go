package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
)

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - db 参数允许传入事务对象，创建与关联同步在同一事务里执行。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据主键检索帖子，预载作者、分类关联与标签关联。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// ListPosts 分页检索帖子列表，支持按状态 / 作者筛选，按创建时间降序。
	ListPosts(ctx context.Context, status *enums.PostStatus, authorID *uint64, offset, limit int) ([]*entities.Post, int64, error)

	// UpdatePost 按 map 部分更新帖子字段。
	// - 未命中任何记录时返回 commonerrors.ErrRepoNotFound。
	UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, updates map[string]interface{}) error

	// DeletePost 对指定帖子执行软删除，并硬删其分类 / 标签关联。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error

	// HardDeletePost 物理删除帖子，用于创建流程失败后的补偿清理。
	HardDeletePost(ctx context.Context, id uint64) error

	// GetCategoriesForPost 返回帖子关联的分类实体与主分类 ID。
	GetCategoriesForPost(ctx context.Context, postID uint64) ([]entities.Category, uint64, error)

	// GetTagsForPost 返回帖子关联的标签实体。
	GetTagsForPost(ctx context.Context, postID uint64) ([]entities.Tag, error)
}

type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{db: db, logger: logger}
}

func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	return nil
}

func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListPosts(ctx context.Context, status *enums.PostStatus, authorID *uint64, offset, limit int) ([]*entities.Post, int64, error) {
	var posts []*entities.Post
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&entities.Post{})
	countQuery := r.db.WithContext(ctx).Model(&entities.Post{})

	if status != nil {
		query = query.Where("status = ?", *status)
		countQuery = countQuery.Where("status = ?", *status)
	}
	if authorID != nil {
		query = query.Where("author_id = ?", *authorID)
		countQuery = countQuery.Where("author_id = ?", *authorID)
	}

	if err := countQuery.Count(&totalCount).Error; err != nil {
		r.logger.Error("帖子列表计数查询失败", zap.Error(err))
		return nil, 0, fmt.Errorf("计数帖子失败: %w", err)
	}
	if totalCount == 0 {
		return posts, 0, nil
	}

	err := query.
		Preload("Author").
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("帖子列表查询失败", zap.Int("offset", offset), zap.Int("limit", limit), zap.Error(err))
		return nil, 0, fmt.Errorf("查询帖子列表失败: %w", err)
	}
	return posts, totalCount, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, db *gorm.DB, postID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新帖子", zap.Uint64("postID", postID))
		return nil
	}

	result := db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ?", postID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新帖子数据库操作失败", zap.Uint64("postID", postID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeletePost 软删帖子本体，关联表是硬删：软删的帖子不应再占用分类 / 标签。
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	if err := db.WithContext(ctx).Where("post_id = ?", id).Delete(&entities.PostCategory{}).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Where("post_id = ?", id).Delete(&entities.PostTag{}).Error; err != nil {
		return err
	}
	return nil
}

// HardDeletePost 用 Unscoped 绕过软删除，连同关联一并物理清除。
// 只在创建补偿路径上调用，不暴露给业务接口。
func (r *postRepository) HardDeletePost(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&entities.PostCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&entities.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entities.Post{}, id).Error
	})
}

func (r *postRepository) GetCategoriesForPost(ctx context.Context, postID uint64) ([]entities.Category, uint64, error) {
	var links []entities.PostCategory
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&links).Error; err != nil {
		return nil, 0, err
	}
	if len(links) == 0 {
		return []entities.Category{}, 0, nil
	}

	var primaryID uint64
	ids := make([]uint64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.CategoryID)
		if link.IsPrimary {
			primaryID = link.CategoryID
		}
	}

	var categories []entities.Category
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, primaryID, nil
}

func (r *postRepository) GetTagsForPost(ctx context.Context, postID uint64) ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
