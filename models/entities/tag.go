package entities

// Tag 标签实体，硬删除
// - 表名: tags
type Tag struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	Name string `gorm:"type:varchar(100);not null"`

	// slug，全表唯一
	Slug string `gorm:"type:varchar(100);not null;uniqueIndex"`

	PostTags []PostTag `gorm:"foreignKey:TagID"`
}
