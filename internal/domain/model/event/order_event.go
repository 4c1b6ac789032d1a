package event

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderCreatedEvent struct {
	BaseEvent
	OrderID     uint            `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
}

func NewOrderCreatedEvent(orderID uint, orderNumber string, totalAmount decimal.Decimal, orderDate time.Time) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseEvent:   NewBaseEvent(OrderCreatedEventName),
		OrderID:     orderID,
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
		OrderDate:   orderDate,
	}
}

func (e *OrderCreatedEvent) Type() EventType {
	return OrderCreatedEventName
}
