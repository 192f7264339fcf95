package kafka

import (
	"ExerciseTracker/internal/api/config"
	"ExerciseTracker/internal/api/dto"
	"context"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// ExercisePublisher 发布运动记录事件
type ExercisePublisher interface {
	PublishExerciseLogged(ctx context.Context, evt *dto.ExerciseLoggedEvent) error
	Close() error
}

type exerciseProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// NewExercisePublisher Brokers 为空时返回空实现
func NewExercisePublisher(cfg config.KafkaConfig) (ExercisePublisher, error) {
	if len(cfg.Brokers) == 0 {
		log.Info("Kafka brokers not configured, exercise events disabled")
		return disabledPublisher{}, nil
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("Kafka producer initialized", "topic", cfg.ExerciseTopic)
	return NewExercisePublisherWithProducer(producer, cfg.ExerciseTopic), nil
}

func NewExercisePublisherWithProducer(producer sarama.SyncProducer, topic string) ExercisePublisher {
	return &exerciseProducerImpl{
		producer: producer,
		topic:    topic,
	}
}

// PublishExerciseLogged 以用户 ID 为 key，同一用户的事件落在同一分区
func (s *exerciseProducerImpl) PublishExerciseLogged(ctx context.Context, evt *dto.ExerciseLoggedEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(evt.UserID),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("publish exercise event: %w", err)
	}

	log.DebugContext(ctx, "Exercise event published",
		"user_id", evt.UserID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (s *exerciseProducerImpl) Close() error {
	return s.producer.Close()
}

type disabledPublisher struct{}

func (disabledPublisher) PublishExerciseLogged(context.Context, *dto.ExerciseLoggedEvent) error {
	return nil
}

func (disabledPublisher) Close() error { return nil }
