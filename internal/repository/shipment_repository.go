package repository

import (
	"errors"

	"github.com/xinna-pharma/internal/models"

	"gorm.io/gorm"
)

// ShipmentRepository 发货记录数据访问接口
type ShipmentRepository interface {
	Create(shipment *models.Shipment) error
	GetByOrderID(orderID uint) (*models.Shipment, error)
	CountByOrderID(orderID uint) (int64, error)
	List(filter ShipmentListFilter) ([]models.Shipment, int64, error)
	WithTx(tx *gorm.DB) ShipmentRepository
}

// GormShipmentRepository GORM 实现
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository 创建发货记录仓库
func NewShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShipmentRepository) WithTx(tx *gorm.DB) ShipmentRepository {
	if tx == nil {
		return r
	}
	return &GormShipmentRepository{db: tx}
}

// Create 创建发货记录
func (r *GormShipmentRepository) Create(shipment *models.Shipment) error {
	return r.db.Omit("Order", "Staff").Create(shipment).Error
}

// GetByOrderID 获取订单的发货记录
func (r *GormShipmentRepository) GetByOrderID(orderID uint) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.Preload("Staff").Where("order_id = ?", orderID).First(&shipment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

// CountByOrderID 统计订单发货记录数
func (r *GormShipmentRepository) CountByOrderID(orderID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Shipment{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List 发货记录列表
func (r *GormShipmentRepository) List(filter ShipmentListFilter) ([]models.Shipment, int64, error) {
	var shipments []models.Shipment
	query := r.db.Model(&models.Shipment{})
	if filter.StaffID != 0 {
		query = query.Where("staff_id = ?", filter.StaffID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Order").Preload("Order.Customer").Preload("Staff").
		Order("shipped_at desc, id desc").Find(&shipments).Error; err != nil {
		return nil, 0, err
	}
	return shipments, total, nil
}
