package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/config"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/entities"

	"github.com/segmentio/kafka-go"
)

type Message struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ShipmentID string    `json:"shipment_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	ArticleIDs []string  `json:"article_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func EventToMessage(e entities.Event) Message {
	return Message{
		ID:         e.ID,
		Type:       string(e.Type),
		ShipmentID: e.ShipmentID,
		OrderID:    e.OrderID,
		ArticleIDs: e.ArticleIDs,
		OccurredAt: e.OccurredAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// Publish writes the event keyed by its shipment, or its order when the
// event has no shipment, so events of one entity keep their order.
func (p *kafkaPublisher) Publish(ctx context.Context, e entities.Event) error {
	value, err := json.Marshal(EventToMessage(e))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := e.ShipmentID
	if key == "" {
		key = e.OrderID
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: value}); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("event published", slog.String("type", string(e.Type)), slog.String("key", key))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
