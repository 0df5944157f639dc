package models

import "time"

// MaxProductImages 商品最多图片数
const MaxProductImages = 3

// Product 药品表
type Product struct {
	ID          uint        `gorm:"primarykey" json:"id"`                                      // 主键
	CategoryID  uint        `gorm:"not null;index" json:"category_id"`                         // 分类ID
	Name        string      `gorm:"type:varchar(200);not null;index" json:"name"`              // 药品名称
	PriceAmount Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 销售单价
	Stock       int         `gorm:"not null;default:0" json:"stock"`                           // 现有库存（不可为负）
	Description string      `gorm:"type:text" json:"description"`                              // 描述
	Images      StringArray `gorm:"type:json" json:"images"`                                   // 图片（最多 3 张）
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time   `json:"updated_at"`                                                // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// PrimaryImage 返回首图
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// CategoryLabel 返回分类名称
func (p Product) CategoryLabel() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
