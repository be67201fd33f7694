package escalation

import (
	"context"
	"encoding/json"

	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/usecase/shared"

	"github.com/IBM/sarama"
)

// KafkaPublisher sends escalation events to the reconciliation topic, keyed by staging token.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}
	return producer, nil
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *KafkaPublisher) Escalate(ctx context.Context, event shared.EscalationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal escalation event")
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.StagingToken),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte("payment.commit_failed")},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errs.Wrap(err, "failed to send escalation event")
	}

	slogEscalated(event, "partition", partition, "offset", offset, "topic", p.topic)
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return errs.Wrap(err, "failed to close kafka producer")
	}
	return nil
}
