package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// TagService 定义了标签管理的业务逻辑接口。
type TagService interface {
	// CreateTag 创建标签。
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*vo.TagVO, error)

	// GetTagByID 检索单个标签。
	GetTagByID(ctx context.Context, id uint64) (*vo.TagVO, error)

	// ListTags 检索全部标签。
	ListTags(ctx context.Context) ([]vo.TagVO, error)

	// UpdateTag 部分字段更新标签。
	UpdateTag(ctx context.Context, id uint64, req *dto.UpdateTagRequest) (*vo.TagVO, error)

	// DeleteTag 删除标签及其帖子关联。
	DeleteTag(ctx context.Context, id uint64) error
}

type tagService struct {
	tagRepo mysql.TagRepository
	logger  *core.ZapLogger
}

// NewTagService 是 tagService 的构造函数。
func NewTagService(tagRepo mysql.TagRepository, logger *core.ZapLogger) TagService {
	return &tagService{tagRepo: tagRepo, logger: logger}
}

func (s *tagService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*vo.TagVO, error) {
	tag := &entities.Tag{Name: req.Name, Slug: req.Slug}
	if err := s.tagRepo.CreateTag(ctx, tag); err != nil {
		s.logger.Error("创建标签失败", zap.Error(err))
		return nil, err
	}
	return vo.NewTagVO(tag), nil
}

func (s *tagService) GetTagByID(ctx context.Context, id uint64) (*vo.TagVO, error) {
	tag, err := s.tagRepo.GetTagByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewTagVO(tag), nil
}

func (s *tagService) ListTags(ctx context.Context) ([]vo.TagVO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]vo.TagVO, 0, len(tags))
	for _, tag := range tags {
		result = append(result, *vo.NewTagVO(tag))
	}
	return result, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id uint64, req *dto.UpdateTagRequest) (*vo.TagVO, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if err := s.tagRepo.UpdateTag(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.GetTagByID(ctx, id)
}

func (s *tagService) DeleteTag(ctx context.Context, id uint64) error {
	return s.tagRepo.DeleteTag(ctx, id)
}
