package vo

import (
	"time"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
)

// EventVO 活动视图。Status 是按当前时间推导的只读字段，不落库。
type EventVO struct {
	ID        uint64            `json:"id"`
	Name      string            `json:"name"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Location  string            `json:"location"`
	Status    enums.EventStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewEventVO 实体转视图，status 由调用方按参照时间计算后传入
func NewEventVO(event *entities.Event, status enums.EventStatus) *EventVO {
	return &EventVO{
		ID:        event.ID,
		Name:      event.Name,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Title:     event.Title,
		Content:   event.Content,
		Location:  event.Location,
		Status:    status,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}
