package models

import (
	"strings"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const defaultOwnerPassword = "owner12345"

// InitDefaultOwner 初始化默认店主账号（仅当员工表为空时）
func InitDefaultOwner(username, password string) error {
	var count int64
	if err := DB.Model(&Staff{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = "owner"
	}
	if password == "" {
		password = defaultOwnerPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := Staff{
		Username:     username,
		Name:         "Owner",
		PasswordHash: string(hash),
		Role:         constants.StaffRoleOwner,
		Status:       constants.AccountStatusActive,
	}
	if err := DB.Create(&owner).Error; err != nil {
		return err
	}
	if password == defaultOwnerPassword {
		logger.Warnw("default_owner_created_with_default_password", "username", username)
	} else {
		logger.Warnw("default_owner_created", "username", username, "password_hidden", true)
	}
	return nil
}
