package models

import "time"

// Shipment 发货记录表，每个订单至多一条
type Shipment struct {
	ID        uint      `gorm:"primarykey" json:"id"`                 // 主键
	OrderID   uint      `gorm:"uniqueIndex;not null" json:"order_id"` // 订单ID
	StaffID   uint      `gorm:"index;not null" json:"staff_id"`       // 登记员工ID
	ShippedAt time.Time `gorm:"index;not null" json:"shipped_at"`     // 发货日期
	Note      string    `gorm:"type:text" json:"note"`                // 承运商/运单备注
	CreatedAt time.Time `gorm:"index" json:"created_at"`              // 创建时间

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"` // 关联订单
	Staff *Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"` // 登记员工
}

// TableName 指定表名
func (Shipment) TableName() string {
	return "shipments"
}
