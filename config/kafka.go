package config

// KafkaConfig Kafka 生产者配置。Brokers 为空表示不启用事件投递。
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

// Topics 本服务会投递的主题
type Topics struct {
	PostPendingReview string `mapstructure:"postPendingReview" yaml:"postPendingReview"` // 帖子提交审核
	PostDeleted       string `mapstructure:"postDeleted" yaml:"postDeleted"`             // 帖子删除
}
