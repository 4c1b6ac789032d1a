package event

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	OrderCreatedEventName   EventType = "OrderCreated"
	LowStockEventName       EventType = "LowStock"
	ProductCreatedEventName EventType = "ProductCreated"
)

type BaseEvent struct {
	EventID   string    `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
	EventType EventType `json:"eventType"`
}

func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		EventType: eventType,
	}
}

func (e *BaseEvent) GetID() string {
	return e.EventID
}

type Event interface {
	Type() EventType
	GetID() string
}
