package dto

// CreateCategoryRequest 创建分类。parent_id 可选，给定时必须指向已存在分类。
type CreateCategoryRequest struct {
	Name         string     `json:"name" binding:"required,max=150"`
	Slug         string     `json:"slug" binding:"required,max=150"`
	Description  string     `json:"description" binding:"omitempty"`
	DisplayOrder int        `json:"display_order" binding:"omitempty,gte=0"`
	ParentID     FlexibleID `json:"parent_id"` // 0 视为未指定
}

// UpdateCategoryRequest 更新分类。ParentID 三态：缺省不动、null 脱离父级、正整数重挂载。
type UpdateCategoryRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=150"`
	Slug         *string          `json:"slug" binding:"omitempty,max=150"`
	Description  *string          `json:"description"`
	DisplayOrder *int             `json:"display_order" binding:"omitempty,gte=0"`
	ParentID     NullableParentID `json:"parent_id"`
}
