package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// UploadVO 上传结果视图
type UploadVO struct {
	ID               uint64    `json:"id"`
	PublicID         string    `json:"public_id"`
	URL              string    `json:"url"`
	ResourceType     string    `json:"resource_type"`
	Bytes            *int64    `json:"bytes,omitempty"`
	Width            *int      `json:"width,omitempty"`
	Height           *int      `json:"height,omitempty"`
	Format           *string   `json:"format,omitempty"`
	Folder           *string   `json:"folder,omitempty"`
	OriginalFilename *string   `json:"original_filename,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewUploadVO 实体转视图
func NewUploadVO(upload *entities.Upload) *UploadVO {
	return &UploadVO{
		ID:               upload.ID,
		PublicID:         upload.PublicID,
		URL:              upload.URL,
		ResourceType:     upload.ResourceType,
		Bytes:            upload.Bytes,
		Width:            upload.Width,
		Height:           upload.Height,
		Format:           upload.Format,
		Folder:           upload.Folder,
		OriginalFilename: upload.OriginalFilename,
		CreatedAt:        upload.CreatedAt,
	}
}
