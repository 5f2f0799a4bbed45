package config

// CloudinaryConfig 媒体存储（Cloudinary）配置
type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name" json:"cloud_name" yaml:"cloud_name"`
	APIKey    string `mapstructure:"api_key" json:"api_key" yaml:"api_key"`
	APISecret string `mapstructure:"api_secret" json:"api_secret" yaml:"api_secret"`
	// Folder 上传时的默认目录，请求未指定 folder 时使用
	Folder string `mapstructure:"folder" json:"folder" yaml:"folder"`
}
