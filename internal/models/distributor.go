package models

import "time"

// Distributor 供应商表
type Distributor struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name      string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"` // 名称
	Phone     string    `gorm:"type:varchar(40)" json:"phone"`                      // 电话
	Address   string    `gorm:"type:text" json:"address"`                           // 地址
	CreatedAt time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                         // 更新时间
}

// TableName 指定表名
func (Distributor) TableName() string {
	return "distributors"
}
