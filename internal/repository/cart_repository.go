package repository

import (
	"errors"
	"time"

	"github.com/xinna-pharma/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByCustomer(customerID uint) ([]models.CartItem, error)
	GetByID(id uint) (*models.CartItem, error)
	GetByCustomerAndProductForUpdate(customerID, productID uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int, subtotal models.Money) error
	DeleteByIDAndCustomer(id, customerID uint) (int64, error)
	CountByCustomer(customerID uint) (int64, error)
	ClearByCustomer(customerID uint) (int64, error)
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByCustomer 获取顾客购物车行（按加入顺序）
func (r *GormCartRepository) ListByCustomer(customerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("customer_id = ?", customerID).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取购物车行（含药品）
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByCustomerAndProductForUpdate 行级锁读取同一顾客同一药品的购物车行
func (r *GormCartRepository) GetByCustomerAndProductForUpdate(customerID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 新建购物车行
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateQuantity 更新数量与小计
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int, subtotal models.Money) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":   quantity,
		"subtotal":   subtotal,
		"updated_at": time.Now(),
	}).Error
}

// DeleteByIDAndCustomer 删除顾客自己的购物车行
func (r *GormCartRepository) DeleteByIDAndCustomer(id, customerID uint) (int64, error) {
	result := r.db.Where("id = ? AND customer_id = ?", id, customerID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// CountByCustomer 统计购物车行数（不同药品数，而非件数）
func (r *GormCartRepository) CountByCustomer(customerID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CartItem{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ClearByCustomer 清空购物车
func (r *GormCartRepository) ClearByCustomer(customerID uint) (int64, error) {
	result := r.db.Where("customer_id = ?", customerID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
