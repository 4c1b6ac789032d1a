package model

import (
	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   uint = 0 // 待處理
	OrderStatusConfirmed uint = 1 // 已確認
	OrderStatusShipped   uint = 2 // 已出貨
	OrderStatusCancelled uint = 3 // 已取消
)

type Order struct {
	BaseModel
	OrderNumber   string          `gorm:"not null;type:varchar(50);uniqueIndex" json:"order_number"`
	CustomerName  string          `gorm:"not null;type:varchar(200)" json:"customer_name"`
	CustomerEmail string          `gorm:"not null;type:varchar(200)" json:"customer_email"`
	TotalAmount   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	Status        uint            `gorm:"not null;default:0;index" json:"status"`
	OrderItems    []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"` // 一對多，級聯刪除
}

type OrderItem struct {
	BaseModel
	OrderID   uint            `gorm:"not null;index" json:"order_id"`   // 外鍵，關聯到 Order
	ProductID uint            `gorm:"not null;index" json:"product_id"` // 外鍵，關聯到 Product
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"` // 下單當下的單價，不隨商品價格變動
	Subtotal  decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
}

// 訂單成立後 total 必須等於所有明細小計之和
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.OrderItems {
		total = total.Add(item.Subtotal)
	}
	return total
}
