package models

import "time"

// ShippingMethod 配送方式
type ShippingMethod struct {
	ID          uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 名称
	Description string    `gorm:"type:text" json:"description"`                       // 说明
	Cost        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"cost"`  // 参考运费
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`                // 是否启用
	CreatedAt   time.Time `json:"created_at"`                                         // 创建时间
}

// TableName 指定表名
func (ShippingMethod) TableName() string {
	return "shipping_methods"
}
