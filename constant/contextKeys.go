package constant

// gin.Context 中由认证中间件注入的键。
// 控制器通过这些键读取当前请求的身份信息，避免各处散落裸字符串。
const (
	// ContextKeyUserID 当前登录用户的 ID (uint64)
	ContextKeyUserID = "auth_user_id"
	// ContextKeyUsername 当前登录用户的用户名 (string)
	ContextKeyUsername = "auth_username"
	// ContextKeyRoles 当前登录用户的角色名列表 ([]string)，取自数据库而非 token
	ContextKeyRoles = "auth_roles"
)
