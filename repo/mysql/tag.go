package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// TagRepository 定义了标签数据的持久化操作接口。
type TagRepository interface {
	// CreateTag 持久化一个新的标签记录。
	CreateTag(ctx context.Context, tag *entities.Tag) error

	// GetTagByID 根据主键检索标签。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetTagByID(ctx context.Context, id uint64) (*entities.Tag, error)

	// ListTags 检索全部标签，按名称升序。
	ListTags(ctx context.Context) ([]*entities.Tag, error)

	// UpdateTag 按 map 部分更新标签字段。
	UpdateTag(ctx context.Context, tagID uint64, updates map[string]interface{}) error

	// DeleteTag 硬删标签及其帖子关联。
	DeleteTag(ctx context.Context, id uint64) error
}

type tagRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTagRepository 是 tagRepository 的构造函数。
func NewTagRepository(db *gorm.DB, logger *core.ZapLogger) TagRepository {
	return &tagRepository{db: db, logger: logger}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag *entities.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return err
	}
	return nil
}

func (r *tagRepository) GetTagByID(ctx context.Context, id uint64) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取标签数据库查询失败", zap.Uint64("tagID", id), zap.Error(err))
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		r.logger.Error("标签列表查询失败", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, tagID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Where("id = ?", tagID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新标签数据库操作失败", zap.Uint64("tagID", tagID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteTag 标签无软删除，连同关联一并物理清除。
func (r *tagRepository) DeleteTag(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Tag{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		return tx.Where("tag_id = ?", id).Delete(&entities.PostTag{}).Error
	})
}
