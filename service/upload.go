package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// UploadService 定义了媒体上传的业务逻辑接口。
// 文件本体托管在媒体宿主（Cloudinary），本服务只留上传记录。
type UploadService interface {
	// UploadFile 把 multipart 文件推给媒体宿主并落一条上传记录。
	// - 宿主失败时透传 myErrors.ErrUpstreamService 包装的错误。
	UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, req *dto.UploadRequest, operatorID uint64) (*vo.UploadVO, error)

	// GetUploadByID 检索单条上传记录。
	GetUploadByID(ctx context.Context, id uint64) (*vo.UploadVO, error)

	// ListUploads 分页检索上传记录。
	ListUploads(ctx context.Context, page, pageSize int) ([]vo.UploadVO, int64, error)

	// DeleteUpload 先销毁远端资源，再删本地记录。
	DeleteUpload(ctx context.Context, id uint64) error
}

type uploadService struct {
	uploadRepo  mysql.UploadRepository
	mediaClient dependencies.MediaClientInterface
	logger      *core.ZapLogger
}

// NewUploadService 是 uploadService 的构造函数。
func NewUploadService(uploadRepo mysql.UploadRepository, mediaClient dependencies.MediaClientInterface, logger *core.ZapLogger) UploadService {
	return &uploadService{uploadRepo: uploadRepo, mediaClient: mediaClient, logger: logger}
}

func (s *uploadService) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, req *dto.UploadRequest, operatorID uint64) (*vo.UploadVO, error) {
	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("打开上传文件失败", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return nil, err
	}
	defer file.Close()

	result, err := s.mediaClient.UploadMedia(ctx, file, req.Folder, req.ResourceType)
	if err != nil {
		return nil, err
	}

	originalFilename := filepath.Base(fileHeader.Filename)
	upload := &entities.Upload{
		PublicID:         result.PublicID,
		URL:              result.URL,
		ResourceType:     result.ResourceType,
		OriginalFilename: &originalFilename,
	}
	if result.Bytes > 0 {
		upload.Bytes = &result.Bytes
	}
	if result.Width > 0 {
		upload.Width = &result.Width
	}
	if result.Height > 0 {
		upload.Height = &result.Height
	}
	if result.Format != "" {
		format := strings.ToLower(result.Format)
		upload.Format = &format
	}
	if req.Folder != "" {
		folder := req.Folder
		upload.Folder = &folder
	}
	if operatorID > 0 {
		upload.UploadedByUserID = &operatorID
	}

	if err := s.uploadRepo.CreateUpload(ctx, upload); err != nil {
		// 远端已经上传成功，本地记录失败时尝试回收远端资源
		s.logger.Error("上传记录落库失败，尝试销毁已上传的远端资源",
			zap.String("publicID", result.PublicID), zap.Error(err))
		if destroyErr := s.mediaClient.DestroyMedia(ctx, result.PublicID, result.ResourceType); destroyErr != nil {
			s.logger.Error("回收远端资源失败，存在孤儿文件",
				zap.String("publicID", result.PublicID), zap.Error(destroyErr))
		}
		return nil, err
	}

	return vo.NewUploadVO(upload), nil
}

func (s *uploadService) GetUploadByID(ctx context.Context, id uint64) (*vo.UploadVO, error) {
	upload, err := s.uploadRepo.GetUploadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewUploadVO(upload), nil
}

func (s *uploadService) ListUploads(ctx context.Context, page, pageSize int) ([]vo.UploadVO, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	uploads, total, err := s.uploadRepo.ListUploads(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	result := make([]vo.UploadVO, 0, len(uploads))
	for _, upload := range uploads {
		result = append(result, *vo.NewUploadVO(upload))
	}
	return result, total, nil
}

func (s *uploadService) DeleteUpload(ctx context.Context, id uint64) error {
	upload, err := s.uploadRepo.GetUploadByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.mediaClient.DestroyMedia(ctx, upload.PublicID, upload.ResourceType); err != nil {
		return err
	}
	return s.uploadRepo.DeleteUpload(ctx, id)
}
