package event

import (
	"github.com/shopspring/decimal"
)

// 庫存低於門檻時發出，讓下游補貨流程訂閱
type LowStockEvent struct {
	BaseEvent
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
}

func NewLowStockEvent(productID uint, productName string, currentStock int) *LowStockEvent {
	return &LowStockEvent{
		BaseEvent:    NewBaseEvent(LowStockEventName),
		ProductID:    productID,
		ProductName:  productName,
		CurrentStock: currentStock,
	}
}

func (e *LowStockEvent) Type() EventType {
	return LowStockEventName
}

type ProductCreatedEvent struct {
	BaseEvent
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
}

func NewProductCreatedEvent(productID uint, productName string, price decimal.Decimal) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseEvent:   NewBaseEvent(ProductCreatedEventName),
		ProductID:   productID,
		ProductName: productName,
		Price:       price,
	}
}

func (e *ProductCreatedEvent) Type() EventType {
	return ProductCreatedEventName
}
