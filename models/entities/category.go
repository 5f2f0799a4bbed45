package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Category 分类实体，经 parent 指针构成自引用树
// - 表名: categories
// - 硬删除: 嵌入 BaseModel 只为统一 ID/时间戳字段，删除用 Unscoped 直接移除行
// - 约束: 仍有子分类的分类不可删除；分类不能成为自己的祖先
type Category struct {
	entities.BaseModel

	// 分类名
	Name string `gorm:"type:varchar(150);not null"`

	// slug，全表唯一
	Slug string `gorm:"type:varchar(150);not null;uniqueIndex"`

	// 描述，可空
	Description string `gorm:"type:text"`

	// 展示排序，小者在前
	DisplayOrder int `gorm:"not null;default:0"`

	// 父分类，可空（顶级分类）
	ParentID *uint64 `gorm:"index"`
	Parent   *Category

	// 子分类
	Children []Category `gorm:"foreignKey:ParentID"`

	PostCategories []PostCategory `gorm:"foreignKey:CategoryID"`
}
