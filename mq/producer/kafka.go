package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// Close 关闭底层 writer，main 退出时调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	}
	return err
}

// SendPostPendingReviewEvent 发送帖子待审核事件到 Kafka
// - 意图: 将进入 pending 状态的帖子投递给审核流消费
func (p *KafkaProducer) SendPostPendingReviewEvent(ctx context.Context, postID uint64, title, slug string, authorID uint64) error {
	event := events.PostPendingReviewEvent{
		EventID:   uuid.New().String(),
		PostID:    postID,
		Title:     title,
		Slug:      slug,
		AuthorID:  authorID,
		Timestamp: time.Now(),
	}
	return p.SendEvent(ctx, p.topics.PostPendingReview, event)
}

// SendPostDeleteEvent 发送帖子删除事件到 Kafka
func (p *KafkaProducer) SendPostDeleteEvent(ctx context.Context, postID uint64) error {
	event := events.PostDeletedEvent{
		EventID:   uuid.New().String(),
		PostID:    postID,
		Timestamp: time.Now(),
	}
	return p.SendEvent(ctx, p.topics.PostDeleted, event)
}
