package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
)

// PostRelationRepository 负责帖子与分类 / 标签的关联同步。
// 同步采用“全删再插”语义：每次调用都把关联表重建为目标列表。
//
// 约定（两个 Sync 一致）：
//  1. 先删光该帖子的现有关联行。
//  2. 目标列表为空则到此为止，关联被清空。
//  3. 按去重后的 ID 批量查目标实体；命中数少于去重数说明有不存在的 ID，
//     返回 myErrors.ErrRelatedEntityMissing，此时关联表保持空（不回插旧数据）。
//  4. 全部命中才插入新关联行。
//
// 第 3 步失败后关联表保持空且对外可见，这是更新路径的约定语义；
// 创建路径把两个 Sync 包在事务里并配合补偿删除，不让半成品帖子存活。
type PostRelationRepository interface {
	// SyncPostCategories 重建帖子的分类关联。
	// - categoryIDs 中第一个出现的分类标记为主分类（is_primary）。
	SyncPostCategories(ctx context.Context, db *gorm.DB, postID uint64, categoryIDs []uint64) error

	// SyncPostTags 重建帖子的标签关联。
	SyncPostTags(ctx context.Context, db *gorm.DB, postID uint64, tagIDs []uint64) error
}

type postRelationRepository struct {
	logger *core.ZapLogger
}

// NewPostRelationRepository 是 postRelationRepository 的构造函数。
func NewPostRelationRepository(logger *core.ZapLogger) PostRelationRepository {
	return &postRelationRepository{logger: logger}
}

// dedupKeepOrder 去重并保留首次出现顺序
func dedupKeepOrder(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (r *postRelationRepository) SyncPostCategories(ctx context.Context, db *gorm.DB, postID uint64, categoryIDs []uint64) error {
	if err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.PostCategory{}).Error; err != nil {
		return err
	}

	distinct := dedupKeepOrder(categoryIDs)
	if len(distinct) == 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id IN ?", distinct).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(distinct)) {
		r.logger.Warn("帖子分类同步：目标列表包含不存在的分类",
			zap.Uint64("postID", postID),
			zap.Uint64s("categoryIDs", distinct),
			zap.Int64("found", count),
		)
		return myErrors.ErrRelatedEntityMissing
	}

	links := make([]entities.PostCategory, 0, len(distinct))
	for i, categoryID := range distinct {
		links = append(links, entities.PostCategory{
			PostID:     postID,
			CategoryID: categoryID,
			IsPrimary:  i == 0, // 列表首位即主分类
		})
	}
	return db.WithContext(ctx).Create(&links).Error
}

func (r *postRelationRepository) SyncPostTags(ctx context.Context, db *gorm.DB, postID uint64, tagIDs []uint64) error {
	if err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&entities.PostTag{}).Error; err != nil {
		return err
	}

	distinct := dedupKeepOrder(tagIDs)
	if len(distinct) == 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&entities.Tag{}).
		Where("id IN ?", distinct).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(distinct)) {
		r.logger.Warn("帖子标签同步：目标列表包含不存在的标签",
			zap.Uint64("postID", postID),
			zap.Uint64s("tagIDs", distinct),
			zap.Int64("found", count),
		)
		return myErrors.ErrRelatedEntityMissing
	}

	links := make([]entities.PostTag, 0, len(distinct))
	for _, tagID := range distinct {
		links = append(links, entities.PostTag{PostID: postID, TagID: tagID})
	}
	return db.WithContext(ctx).Create(&links).Error
}
