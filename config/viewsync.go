package config

// ViewSyncConfig 浏览量同步任务相关配置
type ViewSyncConfig struct {
	// BatchSize 每次数据库批量 UPDATE 覆盖的帖子数量
	BatchSize int `mapstructure:"batchSize" json:"batchSize" yaml:"batchSize"`
	// ConcurrencyLevel 并发执行批量更新的 worker 数量
	ConcurrencyLevel int `mapstructure:"concurrencyLevel" json:"concurrencyLevel" yaml:"concurrencyLevel"`
	// ScanBatchSize Redis SCAN 的 COUNT 建议值
	ScanBatchSize int64 `mapstructure:"scanBatchSize" json:"scanBatchSize" yaml:"scanBatchSize"`
}
