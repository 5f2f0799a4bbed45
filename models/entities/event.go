package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Event 活动实体
// - 表名: events
// - 软删除: 嵌入 BaseModel
// - 状态（upcoming/ongoing/finished）不落库，读取时按当前时间投影
type Event struct {
	entities.BaseModel

	// 活动名
	Name string `gorm:"type:varchar(150);not null"`

	// 起止时间，状态投影的唯一输入
	StartTime time.Time `gorm:"not null"`
	EndTime   time.Time `gorm:"not null"`

	// 标题与正文
	Title   string `gorm:"type:varchar(255);not null"`
	Content string `gorm:"type:longtext;not null"`

	// 地点
	Location string `gorm:"type:varchar(255);not null"`
}
