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

// UploadRepository 定义了上传记录的持久化操作接口。
// 上传记录是媒体宿主返回结果的本地留痕，文件本体不在本服务。
type UploadRepository interface {
	// CreateUpload 持久化一条上传记录。
	CreateUpload(ctx context.Context, upload *entities.Upload) error

	// GetUploadByID 根据主键检索上传记录。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetUploadByID(ctx context.Context, id uint64) (*entities.Upload, error)

	// ListUploads 分页检索上传记录，按创建时间降序。
	ListUploads(ctx context.Context, offset, limit int) ([]*entities.Upload, int64, error)

	// DeleteUpload 硬删一条上传记录（远端资源由服务层先行销毁）。
	DeleteUpload(ctx context.Context, id uint64) error
}

type uploadRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUploadRepository 是 uploadRepository 的构造函数。
func NewUploadRepository(db *gorm.DB, logger *core.ZapLogger) UploadRepository {
	return &uploadRepository{db: db, logger: logger}
}

func (r *uploadRepository) CreateUpload(ctx context.Context, upload *entities.Upload) error {
	if err := r.db.WithContext(ctx).Create(upload).Error; err != nil {
		return err
	}
	return nil
}

func (r *uploadRepository) GetUploadByID(ctx context.Context, id uint64) (*entities.Upload, error) {
	var upload entities.Upload
	err := r.db.WithContext(ctx).First(&upload, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取上传记录失败", zap.Uint64("uploadID", id), zap.Error(err))
		return nil, err
	}
	return &upload, nil
}

func (r *uploadRepository) ListUploads(ctx context.Context, offset, limit int) ([]*entities.Upload, int64, error) {
	var uploads []*entities.Upload
	var totalCount int64

	if err := r.db.WithContext(ctx).Model(&entities.Upload{}).Count(&totalCount).Error; err != nil {
		r.logger.Error("上传记录计数查询失败", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return uploads, 0, nil
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&uploads).Error
	if err != nil {
		r.logger.Error("上传记录列表查询失败", zap.Error(err))
		return nil, 0, err
	}
	return uploads, totalCount, nil
}

func (r *uploadRepository) DeleteUpload(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Upload{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
