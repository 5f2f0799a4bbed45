package config

import "github.com/Xushengqwer/go-common/config"

// ContentConfig 服务的顶层配置，由 core.LoadConfig 从 YAML + 环境变量加载
type ContentConfig struct {
	ZapConfig        config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig    config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig     config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig     config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig      MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig      RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig      KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	AuthConfig       AuthConfig           `mapstructure:"authConfig" json:"authConfig" yaml:"authConfig"`
	CloudinaryConfig CloudinaryConfig     `mapstructure:"cloudinaryConfig" json:"cloudinaryConfig" yaml:"cloudinaryConfig"`
	YouTubeConfig    YouTubeConfig        `mapstructure:"youtubeConfig" json:"youtubeConfig" yaml:"youtubeConfig"`
	ViewSyncConfig   ViewSyncConfig       `mapstructure:"viewSyncConfig" json:"viewSyncConfig" yaml:"viewSyncConfig"`
}
