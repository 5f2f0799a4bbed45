package entities

import "time"

// Upload 已存储到远端媒体宿主的资源记录，硬删除
// - 表名: uploads
// - 删除时先销毁远端资源，再移除本行
type Upload struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 远端资源标识（Cloudinary public_id）
	PublicID string `gorm:"type:varchar(255);not null"`

	// 公开访问 URL
	URL string `gorm:"type:varchar(1024);not null"`

	// 资源类型: image / video / raw
	ResourceType string `gorm:"type:varchar(50);not null"`

	// 字节/像素元数据，可空
	Bytes  *int64
	Width  *int
	Height *int

	// 格式（jpg/png/...），可空
	Format *string `gorm:"type:varchar(50)"`

	// 远端目录，可空
	Folder *string `gorm:"type:varchar(255)"`

	// 原始文件名，可空
	OriginalFilename *string `gorm:"type:varchar(255)"`

	// 上传者，可空（匿名接入场景保留记录）
	UploadedByUserID *uint64 `gorm:"index"`
	UploadedBy       *User   `gorm:"foreignKey:UploadedByUserID"`

	CreatedAt time.Time
}
