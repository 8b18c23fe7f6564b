package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// Message is the part of a JetStream message the intake loop acts on.
// jetstream.Msg satisfies it.
type Message interface {
	Data() []byte
	Subject() string
	Ack() error
	Nak() error
	NakWithDelay(delay time.Duration) error
	Term() error
}

// PullConsumer fetches batches from a durable pull consumer
type PullConsumer struct {
	consumer jetstream.Consumer
}

// NewPullConsumer wraps an ensured JetStream consumer
func NewPullConsumer(consumer jetstream.Consumer) *PullConsumer {
	return &PullConsumer{consumer: consumer}
}

// Fetch pulls up to maxMessages, waiting at most maxWait for the batch to fill
func (c *PullConsumer) Fetch(maxMessages int, maxWait time.Duration) ([]Message, error) {
	batch, err := c.consumer.Fetch(maxMessages, jetstream.FetchMaxWait(maxWait))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var result []Message
	for msg := range batch.Messages() {
		result = append(result, msg)
	}

	if batch.Error() != nil {
		return result, fmt.Errorf("error during fetch: %w", batch.Error())
	}

	return result, nil
}
