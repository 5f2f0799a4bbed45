package vo

// AuthResultVO 注册 / 登录成功后的返回体
type AuthResultVO struct {
	Token string  `json:"token"` // JWT 访问令牌
	User  *UserVO `json:"user"`
}
