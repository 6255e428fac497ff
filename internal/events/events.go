package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"dotdo/internal/config"
	"dotdo/pkg/logger"
)

// Event is one entry in the activity stream: something happened to a
// user's tasks, memos or chat session.
type Event struct {
	Type    string    `json:"type"` // task_created, task_completed, task_deleted, memo_created, chat_fallback
	UserID  string    `json:"user_id"`
	Subject string    `json:"subject,omitempty"`
	Actor   string    `json:"actor"` // "user" or "bot"
	At      time.Time `json:"at"`
}

const (
	ActorUser = "user"
	ActorBot  = "bot"
)

// Publisher writes activity events to Kafka, best-effort. A nil
// Publisher is valid and drops everything, so the app runs without a
// broker configured.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher builds the activity event producer, or nil when no
// brokers are configured.
func NewPublisher(ctx context.Context, cfg *config.Config) *Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info(ctx, "Activity events disabled (no Kafka brokers)")
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		Async:        true,
		RequiredAcks: kafka.RequireOne,
	}
	logger.Info(ctx, "Activity event producer initialized", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	return &Publisher{writer: w}
}

// EnsureTopic creates the activity topic (idempotent). If it fails the
// app still runs; events are just dropped by the broker until it exists.
func EnsureTopic(ctx context.Context, cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		return
	}
	conn, err := kafka.Dial("tcp", cfg.KafkaBrokers[0])
	if err != nil {
		logger.Debug(ctx, "Kafka dial for topic creation failed", "error", err)
		return
	}
	defer conn.Close()
	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             cfg.KafkaTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		logger.Debug(ctx, "Kafka create topic failed (topic may already exist)", "error", err)
		return
	}
	logger.Info(ctx, "Kafka topic ensured", "topic", cfg.KafkaTopic)
}

// Publish sends one event. Failures are logged and swallowed: the
// activity stream never fails a request.
func (p *Publisher) Publish(ctx context.Context, ev Event) {
	if p == nil || p.writer == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Debug(ctx, "Marshal activity event failed", "error", err)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.UserID),
		Value: payload,
	})
	if err != nil {
		logger.Debug(ctx, "Publish activity event failed", "error", err, "type", ev.Type)
	}
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// RunConsumer tails the activity topic and logs each event as a
// structured activity feed. Runs until ctx is canceled.
func RunConsumer(ctx context.Context, cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		return
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopic,
		GroupID:  "dotdo-activity-feed",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	logger.Info(ctx, "Activity consumer started", "topic", cfg.KafkaTopic)
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error(ctx, "Activity fetch failed", "error", err)
			continue
		}
		var ev Event
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			logger.Error(ctx, "Activity decode failed", "error", err, "payload", string(msg.Value))
		} else {
			logger.Info(ctx, "Activity", "type", ev.Type, "user_id", ev.UserID, "actor", ev.Actor, "subject", ev.Subject)
		}
		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "Activity commit failed", "error", err)
		}
	}
}
