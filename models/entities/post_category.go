package entities

// PostCategory 帖子-分类联结表
// - 表名: post_categories
// - (post_id, category_id) 复合主键
// - 同步调用里目标列表的首个分类标记为主分类
type PostCategory struct {
	PostID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint64 `gorm:"primaryKey;autoIncrement:false"`

	IsPrimary bool `gorm:"not null;default:false"`

	Post     Post     `gorm:"foreignKey:PostID"`
	Category Category `gorm:"foreignKey:CategoryID"`
}
