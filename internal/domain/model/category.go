package model

type Category struct {
	BaseModel
	Name        string    `gorm:"not null;type:varchar(100);unique" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // 一對多
}
