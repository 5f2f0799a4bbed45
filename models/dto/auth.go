package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=50"`          // 用户名，必填
	Email     string `json:"email" binding:"required,email,max=100"`      // 邮箱，必填
	Password  string `json:"password" binding:"required,min=6,max=72"`    // 明文密码，必填（bcrypt 上限 72 字节）
	FullName  string `json:"full_name" binding:"omitempty,max=100"`       // 展示名，可选
	AvatarURL string `json:"avatar_url" binding:"omitempty,url,max=255"`  // 头像 URL，可选
}

// LoginRequest 登录请求。identifier 可以是用户名或邮箱。
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"` // 用户名或邮箱
	Password   string `json:"password" binding:"required"`   // 明文密码
}
