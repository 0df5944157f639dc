package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/xinna-pharma/internal/models"

	"gorm.io/gorm"
)

// CustomerAddress 顾客收货信息
type CustomerAddress struct {
	Name     string
	Phone    string
	Address  string
	City     string
	Postcode string
}

// CustomerRepository 顾客数据访问接口
type CustomerRepository interface {
	GetByID(id uint) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	Create(customer *models.Customer) error
	UpdateProfile(id uint, address CustomerAddress) (int64, error)
	TouchLastLogin(id uint, at time.Time) error
	WithTx(tx *gorm.DB) CustomerRepository
}

// GormCustomerRepository GORM 实现
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓库
func NewCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCustomerRepository) WithTx(tx *gorm.DB) CustomerRepository {
	if tx == nil {
		return r
	}
	return &GormCustomerRepository{db: tx}
}

// GetByID 根据 ID 获取顾客
func (r *GormCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByEmail 根据邮箱获取顾客
func (r *GormCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// Create 创建顾客
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// UpdateProfile 覆盖顾客姓名与收货信息
func (r *GormCustomerRepository) UpdateProfile(id uint, address CustomerAddress) (int64, error) {
	result := r.db.Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       address.Name,
		"phone":      address.Phone,
		"address":    address.Address,
		"city":       address.City,
		"postcode":   address.Postcode,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// TouchLastLogin 记录最后登录时间
func (r *GormCustomerRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).Update("last_login_at", at).Error
}
