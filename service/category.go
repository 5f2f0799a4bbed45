package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// CategoryService 定义了分类树的业务逻辑接口。
type CategoryService interface {
	// CreateCategory 创建分类。parent_id 指向不存在的分类时失败。
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error)

	// GetCategoryByID 检索单个分类（带父、子节点与帖子数）。
	GetCategoryByID(ctx context.Context, id uint64) (*vo.CategoryVO, error)

	// ListCategories 检索全部分类，附帖子数统计。
	ListCategories(ctx context.Context) ([]vo.CategoryVO, error)

	// UpdateCategory 部分字段更新分类。
	// - parent_id 三态：缺省不动、null 脱离父级、正整数重挂载。
	// - 重挂载到自身或自己的子孙节点返回 myErrors.ErrCategoryParentCycle。
	UpdateCategory(ctx context.Context, id uint64, req *dto.UpdateCategoryRequest) (*vo.CategoryVO, error)

	// DeleteCategory 软删分类；仍有子分类时返回 myErrors.ErrCategoryHasChildren。
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo mysql.CategoryRepository
	logger       *core.ZapLogger
}

// NewCategoryService 是 categoryService 的构造函数。
func NewCategoryService(db *gorm.DB, categoryRepo mysql.CategoryRepository, logger *core.ZapLogger) CategoryService {
	return &categoryService{db: db, categoryRepo: categoryRepo, logger: logger}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error) {
	category := &entities.Category{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}

	if parentID := uint64(req.ParentID); parentID > 0 {
		exists, err := s.categoryRepo.ExistsByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, myErrors.ErrRelatedEntityMissing
		}
		category.ParentID = &parentID
	}

	if err := s.categoryRepo.CreateCategory(ctx, s.db, category); err != nil {
		s.logger.Error("创建分类失败", zap.Error(err))
		return nil, err
	}
	return s.GetCategoryByID(ctx, category.ID)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint64) (*vo.CategoryVO, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.categoryRepo.CountPostsByCategory(ctx, []uint64{id})
	if err != nil {
		return nil, err
	}
	return vo.NewCategoryVO(category, counts[id]), nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]vo.CategoryVO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
	}
	counts, err := s.categoryRepo.CountPostsByCategory(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]vo.CategoryVO, 0, len(categories))
	for _, category := range categories {
		result = append(result, *vo.NewCategoryVO(category, counts[category.ID]))
	}
	return result, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint64, req *dto.UpdateCategoryRequest) (*vo.CategoryVO, error) {
	if _, err := s.categoryRepo.GetCategoryByID(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	// parent_id 三态处理
	if req.ParentID.Present {
		if req.ParentID.Value == nil {
			updates["parent_id"] = nil
		} else {
			newParent := *req.ParentID.Value
			exists, err := s.categoryRepo.ExistsByID(ctx, newParent)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, myErrors.ErrRelatedEntityMissing
			}
			// 不能挂到自己或自己的子孙上，否则成环
			cyclic, err := s.categoryRepo.IsDescendant(ctx, id, newParent)
			if err != nil {
				return nil, err
			}
			if cyclic {
				return nil, myErrors.ErrCategoryParentCycle
			}
			updates["parent_id"] = newParent
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.categoryRepo.UpdateCategory(ctx, tx, id, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCategoryByID(ctx, id)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.categoryRepo.DeleteCategory(ctx, tx, id)
	})
}
