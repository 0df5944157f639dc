package service

import (
	"github.com/xinna-pharma/internal/constants"
)

// Principal 当前请求主体，由鉴权中间件根据令牌构造
type Principal struct {
	ID       uint
	UserType string
	Role     string
}

// CustomerPrincipal 构造顾客主体
func CustomerPrincipal(id uint) Principal {
	return Principal{ID: id, UserType: constants.UserTypeCustomer}
}

// StaffPrincipal 构造员工主体
func StaffPrincipal(id uint, role string) Principal {
	return Principal{ID: id, UserType: constants.UserTypeStaff, Role: role}
}

// IsCustomer 是否为已登录顾客
func (p Principal) IsCustomer() bool {
	return p.ID != 0 && p.UserType == constants.UserTypeCustomer
}

// IsStaff 是否为已登录员工
func (p Principal) IsStaff() bool {
	return p.ID != 0 && p.UserType == constants.UserTypeStaff
}

func requireCustomer(p Principal) error {
	if !p.IsCustomer() {
		return ErrUnauthorized
	}
	return nil
}

func requireStaff(p Principal) error {
	if !p.IsStaff() {
		return ErrUnauthorized
	}
	return nil
}
