package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
)

func seedPostWithTargets(t *testing.T, db *gorm.DB) (*entities.Post, []entities.Category, []entities.Tag) {
	t.Helper()

	author := entities.User{Username: "author", Email: "author@example.com", PasswordHash: "x"}
	mustCreate(t, db, &author)

	post := entities.Post{Title: "t", Slug: "t", Content: "body", AuthorID: author.ID}
	mustCreate(t, db, &post)

	categories := []entities.Category{
		{Name: "c1", Slug: "c1"},
		{Name: "c2", Slug: "c2"},
		{Name: "c3", Slug: "c3"},
	}
	mustCreate(t, db, &categories)

	tags := []entities.Tag{
		{Name: "t1", Slug: "t1"},
		{Name: "t2", Slug: "t2"},
	}
	mustCreate(t, db, &tags)

	return &post, categories, tags
}

func loadPostCategories(t *testing.T, db *gorm.DB, postID uint64) []entities.PostCategory {
	t.Helper()
	var links []entities.PostCategory
	require.NoError(t, db.Where("post_id = ?", postID).Order("category_id asc").Find(&links).Error)
	return links
}

func TestSyncPostCategoriesFirstIsPrimary(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRelationRepository(newTestLogger(t))
	post, categories, _ := seedPostWithTargets(t, db)
	ctx := context.Background()

	err := repo.SyncPostCategories(ctx, db, post.ID, []uint64{categories[1].ID, categories[0].ID})
	require.NoError(t, err)

	links := loadPostCategories(t, db, post.ID)
	require.Len(t, links, 2)
	for _, link := range links {
		assert.Equal(t, link.CategoryID == categories[1].ID, link.IsPrimary)
	}
}

func TestSyncPostCategoriesResyncMovesPrimary(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRelationRepository(newTestLogger(t))
	post, categories, _ := seedPostWithTargets(t, db)
	ctx := context.Background()

	require.NoError(t, repo.SyncPostCategories(ctx, db, post.ID, []uint64{categories[0].ID, categories[1].ID}))
	// 重新同步，主分类换位，旧关联不残留
	require.NoError(t, repo.SyncPostCategories(ctx, db, post.ID, []uint64{categories[2].ID}))

	links := loadPostCategories(t, db, post.ID)
	require.Len(t, links, 1)
	assert.Equal(t, categories[2].ID, links[0].CategoryID)
	assert.True(t, links[0].IsPrimary)
}

func TestSyncPostCategoriesEmptyListClears(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRelationRepository(newTestLogger(t))
	post, categories, _ := seedPostWithTargets(t, db)
	ctx := context.Background()

	require.NoError(t, repo.SyncPostCategories(ctx, db, post.ID, []uint64{categories[0].ID}))
	require.NoError(t, repo.SyncPostCategories(ctx, db, post.ID, nil))

	assert.Empty(t, loadPostCategories(t, db, post.ID))
}

func TestSyncPostCategoriesMissingTargetLeavesJunctionEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRelationRepository(newTestLogger(t))
	post, categories, _ := seedPostWithTargets(t, db)
	ctx := context.Background()

	require.NoError(t, repo.SyncPostCategories(ctx, db, post.ID, []uint64{categories[0].ID}))

	// 目标列表带一个不存在的 ID：报错，且旧关联已删、新关联不插
	err := repo.SyncPostCategories(ctx, db, post.ID, []uint64{categories[1].ID, 99999})
	assert.ErrorIs(t, err, myErrors.ErrRelatedEntityMissing)
	assert.Empty(t, loadPostCategories(t, db, post.ID))
}

func TestSyncPostCategoriesDeduplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRelationRepository(newTestLogger(t))
	post, categories, _ := seedPostWithTargets(t, db)
	ctx := context.Background()

	err := repo.SyncPostCategories(ctx, db, post.ID, []uint64{
		categories[0].ID, categories[0].ID, categories[1].ID,
	})
	require.NoError(t, err)
	assert.Len(t, loadPostCategories(t, db, post.ID), 2)
}

func TestSyncPostTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRelationRepository(newTestLogger(t))
	post, _, tags := seedPostWithTargets(t, db)
	ctx := context.Background()

	require.NoError(t, repo.SyncPostTags(ctx, db, post.ID, []uint64{tags[0].ID, tags[1].ID}))

	var links []entities.PostTag
	require.NoError(t, db.Where("post_id = ?", post.ID).Find(&links).Error)
	assert.Len(t, links, 2)

	// 缺失的标签 ID 同样让关联表归空
	err := repo.SyncPostTags(ctx, db, post.ID, []uint64{tags[0].ID, 88888})
	assert.ErrorIs(t, err, myErrors.ErrRelatedEntityMissing)

	links = nil
	require.NoError(t, db.Where("post_id = ?", post.ID).Find(&links).Error)
	assert.Empty(t, links)
}
