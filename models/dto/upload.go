package dto

// UploadRequest 上传接口的表单字段（文件本体走 multipart 的 file 字段）
type UploadRequest struct {
	// Folder 远端目录，缺省用配置的默认目录
	Folder string `form:"folder" binding:"omitempty,max=255"`
	// ResourceType 资源类型，缺省 auto 交由媒体宿主推断
	ResourceType string `form:"resource_type" binding:"omitempty,oneof=image video raw auto"`
}
