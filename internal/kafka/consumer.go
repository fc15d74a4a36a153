package kafka

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads a topic as part of a consumer group. Offsets are committed
// only after the handler returns nil, giving at-least-once delivery.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       1 << 20,
			MaxWait:        500 * time.Millisecond,
			StartOffset:    kafka.FirstOffset,
			SessionTimeout: 30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return fmt.Errorf("fetch: %w", err)
		}
		if err := handler(ctx, msg); err != nil {
			return fmt.Errorf("handle offset=%d: %w", msg.Offset, err)
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit offset=%d: %w", msg.Offset, err)
		}
	}
}

// ConsumeEtaEvents decodes each message before handing it on. Undecodable
// messages are logged and skipped so one bad payload does not stall the group.
func (c *Consumer) ConsumeEtaEvents(ctx context.Context, handler func(context.Context, EtaEvent) error) error {
	return c.Consume(ctx, EtaEventHandler(handler))
}

func EtaEventHandler(handler func(context.Context, EtaEvent) error) func(context.Context, kafka.Message) error {
	return func(ctx context.Context, msg kafka.Message) error {
		event, err := DecodeEtaEvent(msg)
		if err != nil {
			log.Printf("skip message topic=%s partition=%d offset=%d: %v", msg.Topic, msg.Partition, msg.Offset, err)
			return nil
		}
		return handler(ctx, event)
	}
}
