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
	"github.com/Xushengqwer/content_service/myErrors"
)

// CategoryRepository 定义了分类树数据的持久化操作接口。
type CategoryRepository interface {
	// CreateCategory 持久化一个新的分类记录。
	CreateCategory(ctx context.Context, db *gorm.DB, category *entities.Category) error

	// GetCategoryByID 根据主键检索分类，预载父节点与直接子节点。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error)

	// ExistsByID 检查分类是否存在（轻量校验，不取整行）。
	ExistsByID(ctx context.Context, id uint64) (bool, error)

	// ListCategories 检索全部分类，按 display_order、id 升序，预载直接子节点。
	ListCategories(ctx context.Context) ([]*entities.Category, error)

	// UpdateCategory 按 map 部分更新分类字段。
	// - parent_id 的置空通过 map 里显式塞 nil 实现。
	UpdateCategory(ctx context.Context, db *gorm.DB, categoryID uint64, updates map[string]interface{}) error

	// DeleteCategory 软删分类。
	// - 仍有子分类时返回 myErrors.ErrCategoryHasChildren，拒绝删除。
	DeleteCategory(ctx context.Context, db *gorm.DB, id uint64) error

	// CountChildren 统计直接子分类数。
	CountChildren(ctx context.Context, id uint64) (int64, error)

	// IsDescendant 判断 candidate 是否位于 rootID 的子孙链上（含自身）。
	// - 重挂载父节点前的环路检查用。
	IsDescendant(ctx context.Context, rootID, candidate uint64) (bool, error)

	// CountPostsByCategory 按分类批量统计关联帖子数，返回 categoryID -> count。
	CountPostsByCategory(ctx context.Context, categoryIDs []uint64) (map[uint64]int64, error)
}

type categoryRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCategoryRepository 是 categoryRepository 的构造函数。
func NewCategoryRepository(db *gorm.DB, logger *core.ZapLogger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, db *gorm.DB, category *entities.Category) error {
	if err := db.WithContext(ctx).Create(category).Error; err != nil {
		return err
	}
	return nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children").
		First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取分类数据库查询失败", zap.Uint64("categoryID", id), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	err := r.db.WithContext(ctx).
		Preload("Children").
		Order("display_order ASC").Order("id ASC").
		Find(&categories).Error
	if err != nil {
		r.logger.Error("分类列表查询失败", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, db *gorm.DB, categoryID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id = ?", categoryID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新分类数据库操作失败", zap.Uint64("categoryID", categoryID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteCategory 删除前先确认没有子分类，避免把子树挂空。
func (r *categoryRepository) DeleteCategory(ctx context.Context, db *gorm.DB, id uint64) error {
	children, err := r.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return myErrors.ErrCategoryHasChildren
	}

	// 分类走硬删除，行直接移除
	result := db.WithContext(ctx).Unscoped().Delete(&entities.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	// 被删分类不再出现在帖子关联里
	if err := db.WithContext(ctx).Where("category_id = ?", id).Delete(&entities.PostCategory{}).Error; err != nil {
		return err
	}
	return nil
}

func (r *categoryRepository) CountChildren(ctx context.Context, id uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("parent_id = ?", id).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// IsDescendant 从 candidate 沿 parent_id 向上爬，碰到 rootID 即为子孙。
// 树深度有限，逐级查询的开销可以接受；带 guard 防御脏数据里的环。
func (r *categoryRepository) IsDescendant(ctx context.Context, rootID, candidate uint64) (bool, error) {
	if rootID == candidate {
		return true, nil
	}
	current := candidate
	for depth := 0; depth < 64; depth++ {
		var category entities.Category
		err := r.db.WithContext(ctx).
			Select("id", "parent_id").
			First(&category, current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		if category.ParentID == nil {
			return false, nil
		}
		if *category.ParentID == rootID {
			return true, nil
		}
		current = *category.ParentID
	}
	return false, fmt.Errorf("分类祖先链深度异常，疑似存在环: candidate=%d", candidate)
}

func (r *categoryRepository) CountPostsByCategory(ctx context.Context, categoryIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CategoryID uint64
		Count      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entities.PostCategory{}).
		Select("category_id", "COUNT(*) AS count").
		Where("category_id IN ?", categoryIDs).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error("按分类统计帖子数失败", zap.Error(err))
		return nil, err
	}
	for _, item := range rows {
		counts[item.CategoryID] = item.Count
	}
	return counts, nil
}
