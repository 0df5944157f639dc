package models

import "time"

// Customer 顾客表
type Customer struct {
	ID           uint       `gorm:"primarykey" json:"id"`                                     // 主键
	Name         string     `gorm:"type:varchar(120);not null" json:"name"`                   // 姓名
	Email        string     `gorm:"type:varchar(190);uniqueIndex;not null" json:"email"`      // 邮箱
	PasswordHash string     `gorm:"not null" json:"-"`                                        // 密码哈希（不返回给前端）
	Phone        string     `gorm:"type:varchar(40)" json:"phone"`                            // 电话
	Address      string     `gorm:"type:text" json:"address"`                                 // 地址（结算时同步为最近一次收货地址）
	City         string     `gorm:"type:varchar(120)" json:"city"`                            // 城市
	Postcode     string     `gorm:"type:varchar(20)" json:"postcode"`                         // 邮编
	Status       string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"` // 账号状态
	TokenVersion uint64     `gorm:"not null;default:0" json:"-"`                              // Token 版本
	LastLoginAt  *time.Time `json:"last_login_at"`                                            // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt    time.Time  `json:"updated_at"`                                               // 更新时间
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
