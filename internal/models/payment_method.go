package models

import "time"

// PaymentMethod 支付方式（仅作为标签存储，不对接支付网关）
type PaymentMethod struct {
	ID          uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 名称
	Description string    `gorm:"type:text" json:"description"`                       // 说明
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`                // 是否启用
	CreatedAt   time.Time `json:"created_at"`                                         // 创建时间
}

// TableName 指定表名
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
