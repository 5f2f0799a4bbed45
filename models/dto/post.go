package dto

// CreatePostRequest 创建帖子。category_ids / tag_ids 接受数字或数字字符串。
type CreatePostRequest struct {
	Title        string         `json:"title" binding:"required,max=255"`
	Slug         string         `json:"slug" binding:"required,max=255"`
	Excerpt      string         `json:"excerpt" binding:"omitempty"`
	Content      string         `json:"content" binding:"required"`
	ThumbnailURL string         `json:"thumbnail_url" binding:"omitempty,url,max=255"`
	Status       string         `json:"status" binding:"omitempty,oneof=draft pending published rejected"`
	AuthorID     FlexibleID     `json:"author_id"` // 缺省时取当前登录用户
	CategoryIDs  FlexibleIDList `json:"category_ids"`
	TagIDs       FlexibleIDList `json:"tag_ids"`
}

// UpdatePostRequest 更新帖子，部分字段更新。
// CategoryIDs / TagIDs 为 nil 表示不触碰关联，空列表表示清空关联。
type UpdatePostRequest struct {
	Title        *string         `json:"title" binding:"omitempty,max=255"`
	Slug         *string         `json:"slug" binding:"omitempty,max=255"`
	Excerpt      *string         `json:"excerpt"`
	Content      *string         `json:"content"`
	ThumbnailURL *string         `json:"thumbnail_url" binding:"omitempty,max=255"`
	Status       *string         `json:"status" binding:"omitempty,oneof=draft pending published rejected"`
	AuthorID     *FlexibleID     `json:"author_id"`
	CategoryIDs  *FlexibleIDList `json:"category_ids"`
	TagIDs       *FlexibleIDList `json:"tag_ids"`
}
