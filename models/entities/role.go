package entities

// Role 角色实体
// - 表名: roles
// - 授权检查只认 Name（大小写不敏感），DisplayName 仅作展示
// - 硬删除，不嵌入软删除基类
type Role struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 角色名，唯一，例如 manager / editor
	Name string `gorm:"type:varchar(50);not null;uniqueIndex"`

	// 展示名
	DisplayName string `gorm:"type:varchar(100);not null"`

	// 描述，可空
	Description string `gorm:"type:varchar(255)"`

	UserRoles []UserRole `gorm:"foreignKey:RoleID"`
}
