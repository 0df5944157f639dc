package repository

import (
	"errors"

	"github.com/xinna-pharma/internal/models"

	"gorm.io/gorm"
)

// MethodRepository 支付方式与配送方式数据访问接口
type MethodRepository interface {
	GetPaymentMethod(id uint) (*models.PaymentMethod, error)
	ListPaymentMethods(activeOnly bool) ([]models.PaymentMethod, error)
	GetShippingMethod(id uint) (*models.ShippingMethod, error)
	ListShippingMethods(activeOnly bool) ([]models.ShippingMethod, error)
}

// GormMethodRepository GORM 实现
type GormMethodRepository struct {
	db *gorm.DB
}

// NewMethodRepository 创建支付/配送方式仓库
func NewMethodRepository(db *gorm.DB) *GormMethodRepository {
	return &GormMethodRepository{db: db}
}

// GetPaymentMethod 根据 ID 获取支付方式
func (r *GormMethodRepository) GetPaymentMethod(id uint) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

// ListPaymentMethods 支付方式列表
func (r *GormMethodRepository) ListPaymentMethods(activeOnly bool) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	query := r.db.Model(&models.PaymentMethod{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id asc").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// GetShippingMethod 根据 ID 获取配送方式
func (r *GormMethodRepository) GetShippingMethod(id uint) (*models.ShippingMethod, error) {
	var method models.ShippingMethod
	if err := r.db.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}

// ListShippingMethods 配送方式列表
func (r *GormMethodRepository) ListShippingMethods(activeOnly bool) ([]models.ShippingMethod, error) {
	var methods []models.ShippingMethod
	query := r.db.Model(&models.ShippingMethod{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id asc").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}
