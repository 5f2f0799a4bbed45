package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/constant"
	"github.com/Xushengqwer/content_service/repo/mysql"
	"github.com/Xushengqwer/content_service/repo/redis"
)

// ViewCountSyncTask 负责定时将 Redis 中的帖子浏览量回写到 MySQL。
type ViewCountSyncTask struct {
	postViewRepo  redis.PostViewRepository
	postBatchRepo mysql.PostBatchOperationsRepository
	cron          *cron.Cron
	logger        *core.ZapLogger
}

// NewViewCountSyncTask 初始化并启动浏览量同步的定时任务。
func NewViewCountSyncTask(
	postViewRepo redis.PostViewRepository,
	postBatchRepo mysql.PostBatchOperationsRepository,
	logger *core.ZapLogger,
) *ViewCountSyncTask {
	task := &ViewCountSyncTask{
		postViewRepo:  postViewRepo,
		postBatchRepo: postBatchRepo,
		cron:          cron.New(),
		logger:        logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 按 constant.SyncViewCountInterval 调度同步作业。
func (t *ViewCountSyncTask) startCronJob() {
	schedule := constant.SyncViewCountInterval
	t.logger.Info("准备启动帖子浏览量同步定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		// 单次执行要覆盖 Redis 全量扫描加 MySQL 批量更新
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.syncViewCountsToDB(ctx)
		t.logger.Info("帖子浏览量同步任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加帖子浏览量同步 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("帖子浏览量同步定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// syncViewCountsToDB 先全量拉取 Redis 浏览量，再批量回写 MySQL。
func (t *ViewCountSyncTask) syncViewCountsToDB(ctx context.Context) {
	viewCounts, err := t.postViewRepo.GetAllViewCounts(ctx)
	if err != nil {
		t.logger.Error("从 Redis 获取全量浏览量失败，本次同步中止。", zap.Error(err))
		return
	}
	if len(viewCounts) == 0 {
		t.logger.Info("从 Redis 获取到的浏览量数据为空，无需同步到 MySQL。")
		return
	}

	if err := t.postBatchRepo.BatchUpdatePostViewCounts(ctx, viewCounts); err != nil {
		t.logger.Error("批量回写浏览量到 MySQL 失败",
			zap.Error(err),
			zap.Int("提交数量", len(viewCounts)),
		)
	}
}

// Stop 优雅地停止 cron 调度器。
// 返回的 context 在所有在途任务完成后关闭。
func (t *ViewCountSyncTask) Stop() context.Context {
	t.logger.Info("正在停止帖子浏览量同步定时任务...")
	return t.cron.Stop()
}
