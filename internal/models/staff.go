package models

import "time"

// Staff 员工表（owner/admin/pharmacist/cashier）
type Staff struct {
	ID           uint       `gorm:"primarykey" json:"id"`                                     // 主键
	Username     string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`    // 登录账号
	Name         string     `gorm:"type:varchar(120)" json:"name"`                            // 姓名
	PasswordHash string     `gorm:"not null" json:"-"`                                        // 密码哈希（不返回给前端）
	Role         string     `gorm:"type:varchar(32);not null;index" json:"role"`              // 角色
	Status       string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"` // 账号状态
	TokenVersion uint64     `gorm:"not null;default:0" json:"-"`                              // Token 版本
	LastLoginAt  *time.Time `json:"last_login_at"`                                            // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt    time.Time  `json:"updated_at"`                                               // 更新时间
}

// TableName 指定表名
func (Staff) TableName() string {
	return "staff"
}
