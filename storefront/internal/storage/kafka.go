package storage

import (
	"context"
	"encoding/json"

	"eatsfront/storefront/internal/domain"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaCheckoutPublisher struct {
	Writer MessageWriter
}

func NewKafkaCheckoutPublisher(writer MessageWriter) *KafkaCheckoutPublisher {
	return &KafkaCheckoutPublisher{Writer: writer}
}

// PublishCheckout keys the message by restaurant so one restaurant's events
// stay ordered on a single partition.
func (p *KafkaCheckoutPublisher) PublishCheckout(ctx context.Context, event domain.CheckoutEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode checkout event")
	}
	if err := p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RestaurantID),
		Value: payload,
	}); err != nil {
		return errors.Wrap(err, "failed to publish checkout event")
	}
	return nil
}
