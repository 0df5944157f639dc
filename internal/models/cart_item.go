package models

import "time"

// CartItem 购物车行，单价在加入时锁定，不随商品调价变动
type CartItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                              // 主键
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_cart_customer_product" json:"customer_id"` // 顾客ID
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_customer_product" json:"product_id"`  // 药品ID
	Quantity   int       `gorm:"not null" json:"quantity"`                                          // 数量
	UnitPrice  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`           // 加入时单价
	Subtotal   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`             // 小计 = 数量 × 单价
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                                        // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联药品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
