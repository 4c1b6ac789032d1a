package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Description string          `gorm:"not null;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock       uint            `gorm:"not null;type:int" json:"stock"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"` // 外鍵，關聯到 Category
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	OrderItems  []OrderItem     `gorm:"foreignKey:ProductID" json:"-"`
}
