package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
)

// AuthorVO 帖子里嵌的作者摘要
type AuthorVO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// PostCategoryVO 帖子关联的分类，带主分类标记
type PostCategoryVO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsPrimary bool   `json:"is_primary"`
}

// PostVO 帖子视图
type PostVO struct {
	ID           uint64           `json:"id"`
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	Excerpt      string           `json:"excerpt,omitempty"`
	Content      string           `json:"content"`
	ThumbnailURL string           `json:"thumbnail_url,omitempty"`
	Status       string           `json:"status"`
	ViewCount    int64            `json:"view_count"`
	Author       *AuthorVO        `json:"author,omitempty"`
	Categories   []PostCategoryVO `json:"categories"`
	Tags         []TagVO          `json:"tags"`
	PublishedAt  *time.Time       `json:"published_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewPostVO 实体转视图。categories / tags 需要调用方预载（Preload）。
func NewPostVO(post *entities.Post, categories []entities.Category, primaryID uint64, tags []entities.Tag) *PostVO {
	v := &PostVO{
		ID:           post.ID,
		Title:        post.Title,
		Slug:         post.Slug,
		Excerpt:      post.Excerpt,
		Content:      post.Content,
		ThumbnailURL: post.ThumbnailURL,
		Status:       string(post.Status),
		ViewCount:    post.ViewCount,
		PublishedAt:  post.PublishedAt,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
		Categories:   make([]PostCategoryVO, 0, len(categories)),
		Tags:         make([]TagVO, 0, len(tags)),
	}
	// Author 未 Preload 时是零值，按 ID 判断
	if post.Author.ID != 0 {
		v.Author = &AuthorVO{
			ID:        post.Author.ID,
			Username:  post.Author.Username,
			FullName:  post.Author.FullName,
			AvatarURL: post.Author.AvatarURL,
		}
	}
	for _, c := range categories {
		v.Categories = append(v.Categories, PostCategoryVO{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			IsPrimary: c.ID == primaryID,
		})
	}
	for _, t := range tags {
		v.Tags = append(v.Tags, *NewTagVO(&t))
	}
	return v
}
