package entities

// UserRole 用户-角色联结表
// - 表名: user_roles
// - (user_id, role_id) 复合主键，天然防止重复授权
type UserRole struct {
	UserID uint64 `gorm:"primaryKey;autoIncrement:false"`
	RoleID uint64 `gorm:"primaryKey;autoIncrement:false"`

	User User `gorm:"foreignKey:UserID"`
	Role Role `gorm:"foreignKey:RoleID"`
}
