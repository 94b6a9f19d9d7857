// Package events publishes bookstore activity to Kafka. Publishing is
// best effort: a broker failure is logged and never blocks or rolls
// back the state transition that produced the event.
package events

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/pkg/kafka"
)

type Type string

const (
	OrderCreated    Type = "order.created"
	OrderCancelled  Type = "order.cancelled"
	LendingApproved Type = "lending.approved"
	LendingReturned Type = "lending.returned"
)

type Event struct {
	Type       Type      `json:"type"`
	UserUID    string    `json:"userId"`
	EntityUID  string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(event Event)
}

type publisher struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

// NewPublisher wraps a sarama producer; a nil producer yields a no-op
// publisher so the service runs without brokers configured.
func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) Publisher {
	if producer == nil {
		return noop{}
	}
	return &publisher{
		producer: producer,
		log:      log.Named("events"),
	}
}

func (p *publisher) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.ActivityTopic,
		Key:   sarama.StringEncoder(event.EntityUID),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Warn("publish event",
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

type noop struct{}

func (noop) Publish(Event) {}
