package vo

import "github.com/Xushengqwer/content_service/models/entities"

// TagVO 标签视图
type TagVO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewTagVO 实体转视图
func NewTagVO(tag *entities.Tag) *TagVO {
	return &TagVO{ID: tag.ID, Name: tag.Name, Slug: tag.Slug}
}
