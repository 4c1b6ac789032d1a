package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	evt_model "github.com/RoyceAzure/lab/productmgt/internal/domain/model/event"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs     []kafka.Message
	writeErr error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishMessageShape(t *testing.T) {
	writer := &fakeWriter{}
	p := &kafkaProducer{writer: writer}

	orderEvt := evt_model.NewOrderCreatedEvent(1, "ORD-20250101120000-ABCDEF01", decimal.RequireFromString("30.00"), time.Now().UTC())
	stockEvt := evt_model.NewLowStockEvent(7, "keyboard", 2)

	err := p.Publish(context.Background(), "product-events", orderEvt, stockEvt)
	require.NoError(t, err)
	require.Len(t, writer.msgs, 2)

	msg := writer.msgs[0]
	assert.Equal(t, "product-events", msg.Topic)
	assert.Equal(t, orderEvt.GetID(), string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, string(evt_model.OrderCreatedEventName), string(msg.Headers[0].Value))

	var decoded evt_model.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "ORD-20250101120000-ABCDEF01", decoded.OrderNumber)
	assert.True(t, decoded.TotalAmount.Equal(decimal.RequireFromString("30.00")))

	assert.Equal(t, string(evt_model.LowStockEventName), string(writer.msgs[1].Headers[0].Value))
}

func TestPublishNoEvents(t *testing.T) {
	writer := &fakeWriter{}
	p := &kafkaProducer{writer: writer}

	require.NoError(t, p.Publish(context.Background(), "product-events"))
	assert.Empty(t, writer.msgs)
}

func TestPublishWriteError(t *testing.T) {
	writer := &fakeWriter{writeErr: errors.New("broker unavailable")}
	p := &kafkaProducer{writer: writer}

	err := p.Publish(context.Background(), "product-events", evt_model.NewLowStockEvent(1, "keyboard", 2))
	assert.Error(t, err)
}

func TestPublishAfterClose(t *testing.T) {
	writer := &fakeWriter{}
	p := &kafkaProducer{writer: writer}

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)

	err := p.Publish(context.Background(), "product-events", evt_model.NewLowStockEvent(1, "keyboard", 2))
	assert.ErrorIs(t, err, ErrProducerClosed)

	// 重複關閉是no-op
	assert.NoError(t, p.Close())
}
