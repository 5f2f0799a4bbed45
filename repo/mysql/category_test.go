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

// seedCategoryChain 建一条 root -> mid -> leaf 的三级分类链
func seedCategoryChain(t *testing.T, db *gorm.DB) (root, mid, leaf entities.Category) {
	t.Helper()

	root = entities.Category{Name: "root", Slug: "root"}
	mustCreate(t, db, &root)

	mid = entities.Category{Name: "mid", Slug: "mid", ParentID: &root.ID}
	mustCreate(t, db, &mid)

	leaf = entities.Category{Name: "leaf", Slug: "leaf", ParentID: &mid.ID}
	mustCreate(t, db, &leaf)
	return root, mid, leaf
}

func TestIsDescendant(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db, newTestLogger(t))
	root, mid, leaf := seedCategoryChain(t, db)
	ctx := context.Background()

	other := entities.Category{Name: "other", Slug: "other"}
	mustCreate(t, db, &other)

	cases := []struct {
		name      string
		rootID    uint64
		candidate uint64
		want      bool
	}{
		{"直接子级", root.ID, mid.ID, true},
		{"隔代子级", root.ID, leaf.ID, true},
		{"自身视为子孙（自指也是环）", root.ID, root.ID, true},
		{"反方向不成立", leaf.ID, root.ID, false},
		{"无关分类", root.ID, other.ID, false},
		{"不存在的候选", root.ID, 99999, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.IsDescendant(ctx, tc.rootID, tc.candidate)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeleteCategoryBlockedByChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db, newTestLogger(t))
	root, mid, leaf := seedCategoryChain(t, db)
	ctx := context.Background()

	// 有子分类的节点不可删
	err := repo.DeleteCategory(ctx, db, root.ID)
	assert.ErrorIs(t, err, myErrors.ErrCategoryHasChildren)

	// 叶子可删，删除后父级也解除封锁
	require.NoError(t, repo.DeleteCategory(ctx, db, leaf.ID))
	require.NoError(t, repo.DeleteCategory(ctx, db, mid.ID))
	require.NoError(t, repo.DeleteCategory(ctx, db, root.ID))
}

func TestDeleteCategoryPurgesPostLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db, newTestLogger(t))
	ctx := context.Background()

	category := entities.Category{Name: "news", Slug: "news"}
	mustCreate(t, db, &category)

	author := entities.User{Username: "u", Email: "u@example.com", PasswordHash: "x"}
	mustCreate(t, db, &author)
	post := entities.Post{Title: "p", Slug: "p", Content: "c", AuthorID: author.ID}
	mustCreate(t, db, &post)
	mustCreate(t, db, &entities.PostCategory{PostID: post.ID, CategoryID: category.ID, IsPrimary: true})

	require.NoError(t, repo.DeleteCategory(ctx, db, category.ID))

	var linkCount int64
	require.NoError(t, db.Model(&entities.PostCategory{}).
		Where("category_id = ?", category.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	// 硬删除：行被物理移除，Unscoped 也查不到
	var rowCount int64
	require.NoError(t, db.Unscoped().Model(&entities.Category{}).
		Where("id = ?", category.ID).Count(&rowCount).Error)
	assert.Zero(t, rowCount)

	exists, err := repo.ExistsByID(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
