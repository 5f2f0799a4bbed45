package dto

// CreateUserRequest 管理端建用户。与注册不同：可直接指定状态与角色列表。
type CreateUserRequest struct {
	Username  string   `json:"username" binding:"required,max=50"`
	Email     string   `json:"email" binding:"required,email,max=100"`
	Password  string   `json:"password" binding:"required,min=6,max=72"`
	FullName  string   `json:"full_name" binding:"omitempty,max=100"`
	AvatarURL string   `json:"avatar_url" binding:"omitempty,url,max=255"`
	Status    string   `json:"status" binding:"omitempty,oneof=active inactive banned"`
	Roles     []string `json:"roles" binding:"omitempty"` // 角色名列表，全部必须已存在
}

// UpdateUserRequest 管理端改用户，部分字段更新：nil 表示不改动。
// Roles 出现时触发整组替换（先全量校验存在性，再删旧插新）。
type UpdateUserRequest struct {
	Username  *string   `json:"username" binding:"omitempty,max=50"`
	Email     *string   `json:"email" binding:"omitempty,email,max=100"`
	Password  *string   `json:"password" binding:"omitempty,min=6,max=72"`
	FullName  *string   `json:"full_name" binding:"omitempty,max=100"`
	AvatarURL *string   `json:"avatar_url" binding:"omitempty,max=255"`
	Status    *string   `json:"status" binding:"omitempty,oneof=active inactive banned"`
	Roles     *[]string `json:"roles"`
}

// AssignRoleRequest 给用户追加一个角色授权
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,max=50"` // 角色名，大小写不敏感匹配
}
