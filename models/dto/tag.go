package dto

// CreateTagRequest 创建标签
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Slug string `json:"slug" binding:"required,max=100"`
}

// UpdateTagRequest 更新标签，部分字段更新
type UpdateTagRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Slug *string `json:"slug" binding:"omitempty,max=100"`
}
