package producer

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/productmgt/internal/domain/model/event"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

var (
	ErrProducerClosed = errors.New("producer is closed")
)

// Producer interface defines the methods that an event producer must implement
type Producer interface {
	// Publish sends domain events to the destination topic
	Publish(ctx context.Context, destination string, evts ...event.Event) error
	// Close closes the producer
	Close() error
}

type Config struct {
	Brokers       []string
	BatchTimeout  time.Duration
	RetryAttempts int
}

// kafkaWriter 方便測試替換 kafka.Writer
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaProducer implements the Producer interface
type kafkaProducer struct {
	writer kafkaWriter
	closed atomic.Bool
}

// New creates a new Kafka event producer
// topic 不綁定在 writer 上，由每次 Publish 的 destination 決定
func New(cfg Config) *kafkaProducer {
	if cfg.BatchTimeout == 0 {
		cfg.BatchTimeout = 100 * time.Millisecond
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = 3
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
		Async:        false,

		// 重試機制設置
		MaxAttempts: cfg.RetryAttempts,

		// 錯誤處理
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Msgf("kafka producer error: "+msg, args...)
		}),

		// 壓縮設置
		Compression: kafka.Snappy,
	}

	return &kafkaProducer{writer: writer}
}

// Publish implements the Producer interface
// 同步發送，會block到所有消息都寫入
func (p *kafkaProducer) Publish(ctx context.Context, destination string, evts ...event.Event) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, len(evts))
	for i, evt := range evts {
		value, err := json.Marshal(evt)
		if err != nil {
			return err
		}
		msgs[i] = kafka.Message{
			Topic: destination,
			Key:   []byte(evt.GetID()),
			Value: value,
			Headers: []kafka.Header{
				{
					Key:   "event_type",
					Value: []byte(evt.Type()),
				},
			},
		}
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

// Close implements the Producer interface
func (p *kafkaProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

var _ Producer = (*kafkaProducer)(nil)
