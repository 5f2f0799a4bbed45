package dto

import "time"

// CreateEventRequest 创建活动。时间为 RFC3339。
type CreateEventRequest struct {
	Name      string    `json:"name" binding:"required,max=150"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtefield=StartTime"`
	Title     string    `json:"title" binding:"required,max=255"`
	Content   string    `json:"content" binding:"required"`
	Location  string    `json:"location" binding:"required,max=255"`
}

// UpdateEventRequest 更新活动，部分字段更新
type UpdateEventRequest struct {
	Name      *string    `json:"name" binding:"omitempty,max=150"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Title     *string    `json:"title" binding:"omitempty,max=255"`
	Content   *string    `json:"content"`
	Location  *string    `json:"location" binding:"omitempty,max=255"`
}
