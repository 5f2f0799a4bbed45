package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// newPostServiceForTest 组装帖子服务。浏览量与事件投递不参与这些用例，
// postViewRepo / kafkaSvc 留空。
func newPostServiceForTest(t *testing.T, db *gorm.DB) PostService {
	t.Helper()
	logger := newTestLogger(t)
	return NewPostService(
		db,
		mysql.NewPostRepository(db, logger),
		mysql.NewPostRelationRepository(logger),
		nil,
		nil,
		logger,
	)
}

func seedPostFixtures(t *testing.T, db *gorm.DB) (entities.User, entities.Category, entities.Tag) {
	t.Helper()

	author := entities.User{Username: "writer", Email: "writer@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&author).Error)

	category := entities.Category{Name: "tech", Slug: "tech"}
	require.NoError(t, db.Create(&category).Error)

	tag := entities.Tag{Name: "go", Slug: "go"}
	require.NoError(t, db.Create(&tag).Error)
	return author, category, tag
}

func TestCreatePostMissingCategoryCompensates(t *testing.T) {
	db := newTestDB(t)
	svc := newPostServiceForTest(t, db)
	author, category, _ := seedPostFixtures(t, db)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Title:       "t",
		Slug:        "t",
		Content:     "body",
		CategoryIDs: dto.FlexibleIDList{dto.FlexibleID(category.ID), 99999},
	}, author.ID)
	assert.ErrorIs(t, err, myErrors.ErrRelatedEntityMissing)

	// 补偿删除：帖子与关联行都不残留（含软删行）
	var postCount int64
	require.NoError(t, db.Unscoped().Model(&entities.Post{}).Count(&postCount).Error)
	assert.Zero(t, postCount)

	var linkCount int64
	require.NoError(t, db.Model(&entities.PostCategory{}).Count(&linkCount).Error)
	assert.Zero(t, linkCount)
}

func TestUpdatePostMissingTargetLeavesJunctionEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newPostServiceForTest(t, db)
	author, category, tag := seedPostFixtures(t, db)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &dto.CreatePostRequest{
		Title:       "原标题",
		Slug:        "original",
		Content:     "body",
		CategoryIDs: dto.FlexibleIDList{dto.FlexibleID(category.ID)},
		TagIDs:      dto.FlexibleIDList{dto.FlexibleID(tag.ID)},
	}, author.ID)
	require.NoError(t, err)

	// 更新路径：字段先落库，关联目标缺失时旧关联已删、新关联不插，无补偿
	newTitle := "新标题"
	badIDs := dto.FlexibleIDList{99999}
	_, err = svc.UpdatePost(ctx, created.ID, &dto.UpdatePostRequest{
		Title:       &newTitle,
		CategoryIDs: &badIDs,
	})
	assert.ErrorIs(t, err, myErrors.ErrRelatedEntityMissing)

	var linkCount int64
	require.NoError(t, db.Model(&entities.PostCategory{}).
		Where("post_id = ?", created.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	var post entities.Post
	require.NoError(t, db.First(&post, created.ID).Error)
	assert.Equal(t, newTitle, post.Title)

	// 未被触碰的标签关联保持原样
	var tagLinks int64
	require.NoError(t, db.Model(&entities.PostTag{}).
		Where("post_id = ?", created.ID).Count(&tagLinks).Error)
	assert.EqualValues(t, 1, tagLinks)
}
