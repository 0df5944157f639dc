package models

import "time"

// Order 销售订单表
type Order struct {
	ID               uint      `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo          string    `gorm:"type:varchar(40);uniqueIndex;not null" json:"order_no"`      // 订单编号
	CustomerID       uint      `gorm:"index;not null" json:"customer_id"`                          // 顾客ID
	PaymentMethodID  uint      `gorm:"index;not null" json:"payment_method_id"`                    // 支付方式ID
	ShippingMethodID uint      `gorm:"index;not null" json:"shipping_method_id"`                   // 配送方式ID
	Status           string    `gorm:"type:varchar(32);index;not null" json:"status"`              // 订单状态
	ItemsAmount      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"items_amount"`  // 商品小计合计
	ShippingCost     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_cost"` // 运费
	PlatformFee      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"platform_fee"`  // 平台费
	TotalAmount      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 订单总额
	RecipientName    string    `gorm:"type:varchar(120)" json:"recipient_name"`                    // 收货人快照
	RecipientPhone   string    `gorm:"type:varchar(40)" json:"recipient_phone"`                    // 联系电话快照
	ShippingAddress  string    `gorm:"type:text" json:"shipping_address"`                          // 收货地址快照
	ShippingCity     string    `gorm:"type:varchar(120)" json:"shipping_city"`                     // 城市快照
	ShippingPostcode string    `gorm:"type:varchar(20)" json:"shipping_postcode"`                  // 邮编快照
	CreatedAt        time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt        time.Time `gorm:"index" json:"updated_at"`                                    // 更新时间

	Items          []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`                    // 订单行
	Customer       *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`              // 顾客
	PaymentMethod  *PaymentMethod  `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`   // 支付方式
	ShippingMethod *ShippingMethod `gorm:"foreignKey:ShippingMethodID" json:"shipping_method,omitempty"` // 配送方式
	Shipment       *Shipment       `gorm:"foreignKey:OrderID" json:"shipment,omitempty"`                 // 发货记录
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
