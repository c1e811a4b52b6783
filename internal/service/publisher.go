package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"library-manager/internal/model"
	"library-manager/pkg/circuitbreaker"
	"library-manager/pkg/kafka"
)

// Publisher pushes loan audit events to Kafka. Publishing is
// best-effort: a broker outage must never fail the request, so sends
// go through a circuit breaker and failures are only logged.
type Publisher struct {
	producer sarama.SyncProducer
	cb       circuitbreaker.CircuitBreaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		cb:       circuitbreaker.New(20, 30*time.Second, 0.5, 3),
		log:      log.Named("events"),
	}
}

func (p *Publisher) PublishLendEvent(event model.LendEvent) {
	if p == nil {
		return
	}
	event.At = time.Now().UTC()
	data, err := json.Marshal(event)
	if err != nil {
		p.log.Error("marshal lend event", zap.Error(err))
		return
	}
	if err := p.cb.Call(func() error {
		msg := &sarama.ProducerMessage{
			Topic: kafka.LendEventsTopic,
			Value: sarama.StringEncoder(data),
		}
		_, _, err := p.producer.SendMessage(msg)
		return err
	}); err != nil {
		p.log.Warn("publish lend event", zap.String("type", event.Type), zap.Error(err))
	}
}
