package entities

// PostTag 帖子-标签联结表
// - 表名: post_tags
// - (post_id, tag_id) 复合主键
type PostTag struct {
	PostID uint64 `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint64 `gorm:"primaryKey;autoIncrement:false"`

	Post Post `gorm:"foreignKey:PostID"`
	Tag  Tag  `gorm:"foreignKey:TagID"`
}
