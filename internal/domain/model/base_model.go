package model

import (
	"time"

	"gorm.io/gorm"
)

// 所有實體共用的基礎欄位
// ID 由 DB 自動遞增產生
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
