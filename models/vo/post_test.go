package vo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/content_service/models/entities"
)

func TestNewPostVOAuthorPresence(t *testing.T) {
	post := &entities.Post{Title: "t", Slug: "t", Content: "c"}

	// Author 未 Preload：零值实体不应产出作者摘要
	v := NewPostVO(post, nil, 0, nil)
	assert.Nil(t, v.Author)

	post.Author = entities.User{Username: "alice"}
	post.Author.ID = 7
	v = NewPostVO(post, nil, 0, nil)
	require.NotNil(t, v.Author)
	assert.Equal(t, uint64(7), v.Author.ID)
	assert.Equal(t, "alice", v.Author.Username)
}

func TestNewPostVOPrimaryCategoryFlag(t *testing.T) {
	post := &entities.Post{Title: "t", Slug: "t", Content: "c"}

	categories := []entities.Category{
		{Name: "a", Slug: "a"},
		{Name: "b", Slug: "b"},
	}
	categories[0].ID = 1
	categories[1].ID = 2

	v := NewPostVO(post, categories, 2, nil)
	require.Len(t, v.Categories, 2)
	for _, c := range v.Categories {
		assert.Equal(t, c.ID == uint64(2), c.IsPrimary)
	}
}
