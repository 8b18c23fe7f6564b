package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/barengan/internal/pkg/logger"
)

const publishTimeout = 10 * time.Second

// Publisher is the JetStream publish surface the producer needs. *Client satisfies it.
type Publisher interface {
	PublishWithOptions(ctx context.Context, opts PublishOptions) error
}

// Producer publishes JSON-encoded messages
type Producer struct {
	publisher Publisher
}

// NewProducer creates a JSON producer on top of a publisher
func NewProducer(publisher Publisher) *Producer {
	return &Producer{publisher: publisher}
}

// Publish marshals message and sends it to topic. A non-empty msgID lets the
// stream drop a duplicate publish of the same message.
func (p *Producer) Publish(ctx context.Context, topic, msgID string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	opts := PublishOptions{
		Subject: topic,
		Data:    msgBytes,
		MsgID:   msgID,
		Timeout: publishTimeout,
	}
	if err := p.publisher.PublishWithOptions(ctx, opts); err != nil {
		return err
	}

	logger.Debug("Published message",
		logger.String("topic", topic),
		logger.String("msg_id", msgID))
	return nil
}
