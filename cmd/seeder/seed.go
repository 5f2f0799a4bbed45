package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/service"
)

// 预置角色，授权检查依赖这三个角色名
var seedRoles = []entities.Role{
	{Name: "manager", DisplayName: "管理员", Description: "全量管理权限"},
	{Name: "editor", DisplayName: "编辑", Description: "帖子与标签编辑权限"},
	{Name: "user", DisplayName: "普通用户", Description: "注册用户默认角色"},
}

// Seed 按依赖顺序填充测试数据：角色 -> 管理员账号 -> 分类/标签/活动 -> 帖子。
func Seed(
	ctx context.Context,
	db *gorm.DB,
	userSvc service.UserService,
	categorySvc service.CategoryService,
	tagSvc service.TagService,
	eventSvc service.EventService,
	postSvc service.PostService,
	logger *core.ZapLogger,
	numPosts int,
) {
	// --- 1. 角色 ---
	for i := range seedRoles {
		role := seedRoles[i]
		if err := db.WithContext(ctx).Where("name = ?", role.Name).FirstOrCreate(&role).Error; err != nil {
			logger.Fatal("填充预置角色失败", zap.Error(err), zap.String("role", role.Name))
		}
	}
	logger.Info("预置角色填充完毕", zap.Int("数量", len(seedRoles)))

	// --- 2. 管理员账号 ---
	adminID := seedAdminUser(ctx, userSvc, logger)

	// --- 3. 分类 ---
	categoryIDs := seedCategories(ctx, categorySvc, logger)

	// --- 4. 标签 ---
	tagIDs := seedTags(ctx, tagSvc, logger)

	// --- 5. 活动 ---
	seedEvents(ctx, eventSvc, logger)

	// --- 6. 帖子（并发创建，挂接随机分类与标签）---
	seedPosts(ctx, postSvc, logger, numPosts, adminID, categoryIDs, tagIDs)

	logger.Info("测试数据填充完毕 (通过服务层)。")
}

func seedAdminUser(ctx context.Context, userSvc service.UserService, logger *core.ZapLogger) uint64 {
	admin, err := userSvc.CreateUser(ctx, &dto.CreateUserRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "admin123456",
		FullName: "站点管理员",
		Status:   "active",
		Roles:    []string{"manager"},
	})
	if err != nil {
		if errors.Is(err, myErrors.ErrIdentityTaken) {
			logger.Info("管理员账号已存在，跳过创建")
			return 0
		}
		logger.Fatal("创建管理员账号失败", zap.Error(err))
	}
	logger.Info("管理员账号创建成功", zap.Uint64("userID", admin.ID))
	return admin.ID
}

func seedCategories(ctx context.Context, categorySvc service.CategoryService, logger *core.ZapLogger) []uint64 {
	names := []string{"技术", "生活", "资讯", "随笔", "公告"}
	ids := make([]uint64, 0, len(names)+2)

	for i, name := range names {
		created, err := categorySvc.CreateCategory(ctx, &dto.CreateCategoryRequest{
			Name:         name,
			Slug:         fmt.Sprintf("category-%d", i+1),
			Description:  gofakeit.Sentence(8),
			DisplayOrder: i,
		})
		if err != nil {
			logger.Warn("创建分类失败，可能已存在", zap.Error(err), zap.String("name", name))
			continue
		}
		ids = append(ids, created.ID)
	}

	// 给第一个分类挂两个子分类，让分类树有层级
	if len(ids) > 0 {
		for j := 0; j < 2; j++ {
			child, err := categorySvc.CreateCategory(ctx, &dto.CreateCategoryRequest{
				Name:         fmt.Sprintf("%s子分类%d", names[0], j+1),
				Slug:         fmt.Sprintf("category-1-%d", j+1),
				DisplayOrder: j,
				ParentID:     dto.FlexibleID(ids[0]),
			})
			if err != nil {
				logger.Warn("创建子分类失败", zap.Error(err))
				continue
			}
			ids = append(ids, child.ID)
		}
	}

	logger.Info("分类填充完毕", zap.Int("数量", len(ids)))
	return ids
}

func seedTags(ctx context.Context, tagSvc service.TagService, logger *core.ZapLogger) []uint64 {
	ids := make([]uint64, 0, 10)
	for i := 0; i < 10; i++ {
		created, err := tagSvc.CreateTag(ctx, &dto.CreateTagRequest{
			Name: fmt.Sprintf("%s-%d", gofakeit.Word(), i+1),
			Slug: fmt.Sprintf("tag-%d", i+1),
		})
		if err != nil {
			logger.Warn("创建标签失败，可能已存在", zap.Error(err))
			continue
		}
		ids = append(ids, created.ID)
	}
	logger.Info("标签填充完毕", zap.Int("数量", len(ids)))
	return ids
}

func seedEvents(ctx context.Context, eventSvc service.EventService, logger *core.ZapLogger) {
	now := time.Now()
	// 覆盖三种派生状态：已结束 / 进行中 / 未开始
	windows := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"往期活动", now.AddDate(0, -1, 0), now.AddDate(0, -1, 2)},
		{"进行中的活动", now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)},
		{"即将开始的活动", now.AddDate(0, 1, 0), now.AddDate(0, 1, 2)},
	}
	for _, w := range windows {
		_, err := eventSvc.CreateEvent(ctx, &dto.CreateEventRequest{
			Name:      w.name,
			StartTime: w.start,
			EndTime:   w.end,
			Title:     gofakeit.Sentence(6),
			Content:   gofakeit.Paragraph(2, 4, 15, "\n\n"),
			Location:  gofakeit.City(),
		})
		if err != nil {
			logger.Warn("创建活动失败", zap.Error(err), zap.String("name", w.name))
		}
	}
	logger.Info("活动填充完毕", zap.Int("数量", len(windows)))
}

func seedPosts(
	ctx context.Context,
	postSvc service.PostService,
	logger *core.ZapLogger,
	numPosts int,
	authorID uint64,
	categoryIDs []uint64,
	tagIDs []uint64,
) {
	statuses := []string{"draft", "pending", "published", "published", "published"}

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			createReq := &dto.CreatePostRequest{
				Title:       gofakeit.Sentence(gofakeit.Number(5, 12)),
				Slug:        fmt.Sprintf("seed-post-%d-%d", time.Now().UnixNano(), itemIndex),
				Excerpt:     gofakeit.Sentence(15),
				Content:     gofakeit.Paragraph(3, 5, 20, "\n\n"),
				Status:      statuses[gofakeit.Number(0, len(statuses)-1)],
				AuthorID:    dto.FlexibleID(authorID),
				CategoryIDs: pickRandomIDs(categoryIDs, gofakeit.Number(1, 2)),
				TagIDs:      pickRandomIDs(tagIDs, gofakeit.Number(0, 4)),
			}

			resp, err := postSvc.CreatePost(ctx, createReq, authorID)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title))
			} else {
				logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
					zap.Uint64("post_id", resp.ID),
					zap.String("status", resp.Status))
			}
		}(i)
	}

	wg.Wait()
}

// pickRandomIDs 从候选 ID 中随机取 n 个（不重复），候选不足时全取。
func pickRandomIDs(pool []uint64, n int) dto.FlexibleIDList {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := make([]uint64, len(pool))
	copy(shuffled, pool)
	gofakeit.ShuffleAnySlice(shuffled)

	picked := make(dto.FlexibleIDList, 0, n)
	for _, id := range shuffled[:n] {
		picked = append(picked, dto.FlexibleID(id))
	}
	return picked
}
