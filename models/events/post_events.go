package events

import "time"

// 帖子生命周期事件，经 Kafka 投递给下游（审核流、搜索索引等）。
// EventID 用于下游幂等消费。

// PostPendingReviewEvent 帖子进入待审核状态
type PostPendingReviewEvent struct {
	EventID   string    `json:"event_id"`
	PostID    uint64    `json:"post_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	AuthorID  uint64    `json:"author_id"`
	Timestamp time.Time `json:"timestamp"`
}

// PostDeletedEvent 帖子被删除
type PostDeletedEvent struct {
	EventID   string    `json:"event_id"`
	PostID    uint64    `json:"post_id"`
	Timestamp time.Time `json:"timestamp"`
}
