package dependencies

import (
	"context"
	"fmt"
	"io"

	"github.com/Xushengqwer/go-common/core"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
)

// MediaUploadResult 媒体宿主返回的上传结果
type MediaUploadResult struct {
	PublicID     string
	URL          string
	ResourceType string
	Bytes        int64
	Width        int
	Height       int
	Format       string
}

// MediaClientInterface 定义了媒体宿主客户端需要实现的方法
type MediaClientInterface interface {
	// UploadMedia 从 io.Reader 上传文件，返回远端资源描述
	UploadMedia(ctx context.Context, reader io.Reader, folder, resourceType string) (*MediaUploadResult, error)
	// DestroyMedia 销毁远端资源
	DestroyMedia(ctx context.Context, publicID, resourceType string) error
}

type cloudinaryClient struct {
	client *cloudinary.Cloudinary
	logger *core.ZapLogger
	cfg    *config.CloudinaryConfig
}

// InitCloudinary 初始化 Cloudinary 客户端
func InitCloudinary(cfg *config.CloudinaryConfig, logger *core.ZapLogger) (MediaClientInterface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Cloudinary 配置不能为nil")
	}
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		logger.Error("Cloudinary 配置不完整")
		return nil, fmt.Errorf("Cloudinary 配置不完整，缺少关键字段 (CloudName, APIKey, APISecret)")
	}

	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		logger.Error("初始化 Cloudinary 客户端失败", zap.Error(err))
		return nil, fmt.Errorf("初始化 Cloudinary 客户端失败: %w", err)
	}

	logger.Info("Cloudinary 客户端初始化成功", zap.String("cloudName", cfg.CloudName))
	return &cloudinaryClient{client: client, logger: logger, cfg: cfg}, nil
}

// UploadMedia 上传文件到 Cloudinary。
// folder 为空时回落到配置的默认目录；resourceType 为空时交由宿主推断（auto）。
func (c *cloudinaryClient) UploadMedia(ctx context.Context, reader io.Reader, folder, resourceType string) (*MediaUploadResult, error) {
	if folder == "" {
		folder = c.cfg.Folder
	}
	if resourceType == "" {
		resourceType = "auto"
	}

	resp, err := c.client.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder:       folder,
		ResourceType: resourceType,
	})
	if err != nil {
		c.logger.Error("Cloudinary 上传 API 调用失败", zap.String("folder", folder), zap.Error(err))
		return nil, fmt.Errorf("上传文件到 Cloudinary 失败: %w", err)
	}
	if resp.Error.Message != "" {
		c.logger.Error("Cloudinary 上传返回业务错误",
			zap.String("folder", folder),
			zap.String("message", resp.Error.Message),
		)
		return nil, fmt.Errorf("Cloudinary 上传失败: %s", resp.Error.Message)
	}

	c.logger.Info("Cloudinary 文件上传成功",
		zap.String("publicID", resp.PublicID),
		zap.String("url", resp.SecureURL),
	)
	return &MediaUploadResult{
		PublicID:     resp.PublicID,
		URL:          resp.SecureURL,
		ResourceType: resp.ResourceType,
		Bytes:        int64(resp.Bytes),
		Width:        resp.Width,
		Height:       resp.Height,
		Format:       resp.Format,
	}, nil
}

// DestroyMedia 销毁 Cloudinary 上的资源
func (c *cloudinaryClient) DestroyMedia(ctx context.Context, publicID, resourceType string) error {
	if resourceType == "" || resourceType == "auto" {
		resourceType = "image"
	}
	resp, err := c.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		c.logger.Error("Cloudinary 销毁 API 调用失败", zap.String("publicID", publicID), zap.Error(err))
		return fmt.Errorf("销毁 Cloudinary 资源 '%s' 失败: %w", publicID, err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		c.logger.Error("Cloudinary 销毁返回异常结果",
			zap.String("publicID", publicID),
			zap.String("result", resp.Result),
		)
		return fmt.Errorf("Cloudinary 资源销毁失败，结果: %s", resp.Result)
	}
	c.logger.Info("Cloudinary 资源销毁成功", zap.String("publicID", publicID))
	return nil
}
