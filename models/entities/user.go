package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/content_service/models/enums"
)

// User 用户实体
// - 表名: users
// - 软删除: 嵌入 BaseModel（ID, CreatedAt, UpdatedAt, DeletedAt），删除仅打时间戳，
//   默认查询自动排除已删除用户
type User struct {
	entities.BaseModel

	// 用户名，登录身份之一，全表唯一
	Username string `gorm:"type:varchar(50);not null;uniqueIndex"`

	// 密码哈希（bcrypt），任何响应都不得携带该字段
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	// 展示名，可空
	FullName string `gorm:"type:varchar(100)"`

	// 邮箱，登录身份之一，全表唯一
	Email string `gorm:"type:varchar(100);not null;uniqueIndex"`

	// 头像 URL，可空
	AvatarURL string `gorm:"type:varchar(255)"`

	// 状态: active / inactive / banned
	Status enums.UserStatus `gorm:"type:varchar(20);not null;default:active"`

	// 角色授权（user_roles 联结表）
	UserRoles []UserRole `gorm:"foreignKey:UserID"`

	// 该用户发布的帖子
	Posts []Post `gorm:"foreignKey:AuthorID"`
}

// RoleNames 取出该用户当前持有的角色名列表。
// 需要调用方已 Preload UserRoles.Role，否则返回空列表。
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.UserRoles))
	for _, ur := range u.UserRoles {
		if ur.Role.Name != "" {
			names = append(names, ur.Role.Name)
		}
	}
	return names
}
