package enums

// 本服务的业务枚举以字符串形式入库（varchar 列），与对外 JSON 表示一致，
// 避免整型枚举在 API 层还需要一轮翻译。

// UserStatus 用户状态
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"   // 正常
	UserStatusInactive UserStatus = "inactive" // 停用
	UserStatusBanned   UserStatus = "banned"   // 封禁
)

// PostStatus 帖子状态
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"     // 草稿
	PostStatusPending   PostStatus = "pending"   // 待审核
	PostStatusPublished PostStatus = "published" // 已发布
	PostStatusRejected  PostStatus = "rejected"  // 已拒绝
)

// Valid 校验帖子状态取值是否合法
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPending, PostStatusPublished, PostStatusRejected:
		return true
	}
	return false
}

// Valid 校验用户状态取值是否合法
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBanned:
		return true
	}
	return false
}

// EventStatus 活动状态。不落库，读取时根据当前时间对 start_time/end_time 投影得出。
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming" // 未开始
	EventStatusOngoing  EventStatus = "ongoing"  // 进行中
	EventStatusFinished EventStatus = "finished" // 已结束
)
