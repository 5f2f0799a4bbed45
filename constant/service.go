package constant

const (
	// ServiceName 服务名，用于追踪与日志标识
	ServiceName = "content_service"
	// ServiceVersion 服务版本
	ServiceVersion = "1.0.0"
)

const (
	// SyncViewCountInterval 浏览量回写 MySQL 的 cron 表达式（分钟级，每 5 分钟一次）
	SyncViewCountInterval = "*/5 * * * *"
)

const (
	// MaxUploadSizeBytes 单个上传文件的大小上限（10MB）
	MaxUploadSizeBytes int64 = 10 << 20
	// MaxMultipartMemory 解析 multipart 表单时的内存上限
	MaxMultipartMemory int64 = 16 << 20
)
