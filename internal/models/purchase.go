package models

import "time"

// Purchase 采购入库单表
type Purchase struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                                                     // 主键
	DistributorID uint      `gorm:"not null;uniqueIndex:idx_purchase_distributor_invoice" json:"distributor_id"`              // 供应商ID
	InvoiceNo     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_purchase_distributor_invoice" json:"invoice_no"` // 发票号
	PurchaseDate  time.Time `gorm:"index;not null" json:"purchase_date"`                                                      // 采购日期
	TotalAmount   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`                                // 合计
	RecordedBy    uint      `gorm:"index" json:"recorded_by"`                                                                 // 录入员工ID
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                                                  // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                                                               // 更新时间

	Items       []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`          // 采购行
	Distributor *Distributor   `gorm:"foreignKey:DistributorID" json:"distributor,omitempty"` // 供应商
}

// TableName 指定表名
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem 采购行表
type PurchaseItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`                                   // 主键
	PurchaseID uint      `gorm:"index;not null" json:"purchase_id"`                      // 采购单ID
	ProductID  uint      `gorm:"index;not null" json:"product_id"`                       // 药品ID
	Quantity   int       `gorm:"not null" json:"quantity"`                               // 数量
	UnitCost   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_cost"` // 进价
	Subtotal   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`  // 小计
	CreatedAt  time.Time `json:"created_at"`                                             // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联药品
}

// TableName 指定表名
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
