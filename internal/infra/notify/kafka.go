package notify

import (
	"context"
	"encoding/json"
	"time"

	"laundromat-api/internal/domain/notification"
	"laundromat-api/internal/pkg/config"
	"laundromat-api/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes events to the notifications topic keyed by user id,
// so the events of one user stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
		MaxAttempts:  3,
		RequiredAcks: kafka.RequireOne,
	}}
}

func (p *KafkaPublisher) Notify(ctx context.Context, events ...notification.Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			return errs.Wrap(err, "encode notification")
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.UserID.String()),
			Value: data,
			Time:  e.CreatedAt,
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return errs.Wrapf(err, "publish %d notifications", len(msgs))
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
