package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"

	"github.com/Xushengqwer/content_service/models/enums"
)

// Post 帖子实体
// - 表名: posts
// - 软删除: 嵌入 BaseModel，删除后不再出现在列表与详情中
type Post struct {
	entities.BaseModel

	// 标题，必填
	Title string `gorm:"type:varchar(255);not null"`

	// slug，URL 友好标识，全表唯一
	Slug string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 摘要，可空
	Excerpt string `gorm:"type:text"`

	// 正文
	Content string `gorm:"type:longtext;not null"`

	// 缩略图 URL，可空
	ThumbnailURL string `gorm:"type:varchar(255)"`

	// 状态: draft / pending / published / rejected
	Status enums.PostStatus `gorm:"type:varchar(20);not null;default:draft"`

	// 浏览量。写路径在 Redis 中累加，由定时任务批量回写本列。
	ViewCount int64 `gorm:"not null;default:0"`

	// 作者，恰好一个
	AuthorID uint64 `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID"`

	// 首次进入 published 状态的时间，可空
	PublishedAt *time.Time

	// 分类关联（post_categories 联结表），首个为主分类
	PostCategories []PostCategory `gorm:"foreignKey:PostID"`

	// 标签关联（post_tags 联结表）
	PostTags []PostTag `gorm:"foreignKey:PostID"`
}
