package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// RoleVO 角色视图
type RoleVO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// UserVO 用户视图。密码散列永不外出。
type UserVO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Status    string    `json:"status"`
	Roles     []string  `json:"roles"`
	PostCount int64     `json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRoleVO 实体转视图
func NewRoleVO(role *entities.Role) *RoleVO {
	return &RoleVO{
		ID:          role.ID,
		Name:        role.Name,
		DisplayName: role.DisplayName,
		Description: role.Description,
	}
}

// NewUserVO 实体转视图。postCount 由仓库层单独统计。
func NewUserVO(user *entities.User, postCount int64) *UserVO {
	roles := user.RoleNames()
	if roles == nil {
		roles = []string{}
	}
	return &UserVO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Status:    string(user.Status),
		Roles:     roles,
		PostCount: postCount,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
