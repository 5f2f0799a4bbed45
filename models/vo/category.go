package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// CategorySummaryVO 分类摘要，用于父 / 子节点嵌套
type CategorySummaryVO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryVO 分类视图
type CategoryVO struct {
	ID           uint64              `json:"id"`
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	Description  string              `json:"description,omitempty"`
	DisplayOrder int                 `json:"display_order"`
	ParentID     *uint64             `json:"parent_id"`
	Parent       *CategorySummaryVO  `json:"parent,omitempty"`
	Children     []CategorySummaryVO `json:"children"`
	PostCount    int64               `json:"post_count"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// NewCategoryVO 实体转视图。postCount 由仓库层 GROUP BY 统计后传入。
func NewCategoryVO(category *entities.Category, postCount int64) *CategoryVO {
	v := &CategoryVO{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		DisplayOrder: category.DisplayOrder,
		ParentID:     category.ParentID,
		Children:     make([]CategorySummaryVO, 0, len(category.Children)),
		PostCount:    postCount,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
	if category.Parent != nil {
		v.Parent = &CategorySummaryVO{ID: category.Parent.ID, Name: category.Parent.Name, Slug: category.Parent.Slug}
	}
	for _, child := range category.Children {
		v.Children = append(v.Children, CategorySummaryVO{ID: child.ID, Name: child.Name, Slug: child.Slug})
	}
	return v
}
