package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
)

// EventRepository 定义了活动数据的持久化操作接口。
// 活动状态（upcoming / ongoing / finished）不落库，读取时由服务层按当前时间推导。
type EventRepository interface {
	// CreateEvent 持久化一个新的活动记录。
	CreateEvent(ctx context.Context, event *entities.Event) error

	// GetEventByID 根据主键检索活动。
	// - 未找到时返回 commonerrors.ErrRepoNotFound。
	GetEventByID(ctx context.Context, id uint64) (*entities.Event, error)

	// ListEvents 检索全部活动，按开始时间升序。
	ListEvents(ctx context.Context) ([]*entities.Event, error)

	// UpdateEvent 按 map 部分更新活动字段。
	UpdateEvent(ctx context.Context, eventID uint64, updates map[string]interface{}) error

	// DeleteEvent 对指定活动执行软删除。
	DeleteEvent(ctx context.Context, id uint64) error
}

type eventRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewEventRepository 是 eventRepository 的构造函数。
func NewEventRepository(db *gorm.DB, logger *core.ZapLogger) EventRepository {
	return &eventRepository{db: db, logger: logger}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event *entities.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return err
	}
	return nil
}

func (r *eventRepository) GetEventByID(ctx context.Context, id uint64) (*entities.Event, error) {
	var event entities.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取活动数据库查询失败", zap.Uint64("eventID", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListEvents(ctx context.Context) ([]*entities.Event, error) {
	var events []*entities.Event
	if err := r.db.WithContext(ctx).Order("start_time ASC").Find(&events).Error; err != nil {
		r.logger.Error("活动列表查询失败", zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) UpdateEvent(ctx context.Context, eventID uint64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&entities.Event{}).
		Where("id = ?", eventID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("更新活动数据库操作失败", zap.Uint64("eventID", eventID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *eventRepository) DeleteEvent(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
