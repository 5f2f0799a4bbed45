package config

// AuthConfig 认证相关配置
type AuthConfig struct {
	// JWTSecret HS256 签名密钥
	JWTSecret string `mapstructure:"jwt_secret" json:"jwt_secret" yaml:"jwt_secret"`
	// JWTExpireMinutes token 有效期（分钟）
	JWTExpireMinutes int `mapstructure:"jwt_expire_minutes" json:"jwt_expire_minutes" yaml:"jwt_expire_minutes"`
	// JWTIssuer 签发方标识
	JWTIssuer string `mapstructure:"jwt_issuer" json:"jwt_issuer" yaml:"jwt_issuer"`
	// DefaultUserRole 注册成功后尝试附加的默认角色名。
	// 该角色不存在时注册静默降级为无角色，仅打日志。
	DefaultUserRole string `mapstructure:"default_user_role" json:"default_user_role" yaml:"default_user_role"`
	// BcryptCost bcrypt 哈希成本，0 表示使用库默认值
	BcryptCost int `mapstructure:"bcrypt_cost" json:"bcrypt_cost" yaml:"bcrypt_cost"`
}
