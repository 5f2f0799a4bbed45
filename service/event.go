package service

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// EventStatusAt 按参照时间推导活动状态。
// 边界时刻归属进行中：now == start 和 now == end 都算 ongoing。
func EventStatusAt(now, start, end time.Time) enums.EventStatus {
	if now.Before(start) {
		return enums.EventStatusUpcoming
	}
	if now.After(end) {
		return enums.EventStatusFinished
	}
	return enums.EventStatusOngoing
}

// EventService 定义了活动管理的业务逻辑接口。
// 活动状态不落库，每次读取按当前时间现算。
type EventService interface {
	// CreateEvent 创建活动。
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*vo.EventVO, error)

	// GetEventByID 检索单个活动。
	GetEventByID(ctx context.Context, id uint64) (*vo.EventVO, error)

	// ListEvents 检索全部活动，按开始时间升序。
	ListEvents(ctx context.Context) ([]vo.EventVO, error)

	// UpdateEvent 部分字段更新活动。
	UpdateEvent(ctx context.Context, id uint64, req *dto.UpdateEventRequest) (*vo.EventVO, error)

	// DeleteEvent 软删活动。
	DeleteEvent(ctx context.Context, id uint64) error
}

type eventService struct {
	eventRepo mysql.EventRepository
	logger    *core.ZapLogger
	// now 可注入，测试里固定参照时间
	now func() time.Time
}

// NewEventService 是 eventService 的构造函数。
func NewEventService(eventRepo mysql.EventRepository, logger *core.ZapLogger) EventService {
	return &eventService{eventRepo: eventRepo, logger: logger, now: time.Now}
}

func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*vo.EventVO, error) {
	event := &entities.Event{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
		Content:   req.Content,
		Location:  req.Location,
	}
	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		s.logger.Error("创建活动失败", zap.Error(err))
		return nil, err
	}
	return vo.NewEventVO(event, EventStatusAt(s.now(), event.StartTime, event.EndTime)), nil
}

func (s *eventService) GetEventByID(ctx context.Context, id uint64) (*vo.EventVO, error) {
	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewEventVO(event, EventStatusAt(s.now(), event.StartTime, event.EndTime)), nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]vo.EventVO, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]vo.EventVO, 0, len(events))
	for _, event := range events {
		result = append(result, *vo.NewEventVO(event, EventStatusAt(now, event.StartTime, event.EndTime)))
	}
	return result, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint64, req *dto.UpdateEventRequest) (*vo.EventVO, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if err := s.eventRepo.UpdateEvent(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.GetEventByID(ctx, id)
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint64) error {
	return s.eventRepo.DeleteEvent(ctx, id)
}
