package repository

import (
	"errors"

	"github.com/xinna-pharma/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurchaseRepository 采购单数据访问接口
type PurchaseRepository interface {
	Create(purchase *models.Purchase, items []models.PurchaseItem) error
	GetByID(id uint) (*models.Purchase, error)
	ExistsInvoice(distributorID uint, invoiceNo string) (bool, error)
	List(filter PurchaseListFilter) ([]models.Purchase, int64, error)
	Delete(id uint) (int64, error)
	WithTx(tx *gorm.DB) PurchaseRepository
}

// GormPurchaseRepository GORM 实现
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository 创建采购单仓库
func NewPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPurchaseRepository) WithTx(tx *gorm.DB) PurchaseRepository {
	if tx == nil {
		return r
	}
	return &GormPurchaseRepository{db: tx}
}

func (r *GormPurchaseRepository) withDetails(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Distributor").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Items.Product")
}

// Create 创建采购单及采购行
func (r *GormPurchaseRepository) Create(purchase *models.Purchase, items []models.PurchaseItem) error {
	if err := r.db.Omit(clause.Associations).Create(purchase).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].PurchaseID = purchase.ID
	}
	if len(items) > 0 {
		if err := r.db.Omit(clause.Associations).Create(&items).Error; err != nil {
			return err
		}
	}
	purchase.Items = items
	return nil
}

// GetByID 获取采购单详情
func (r *GormPurchaseRepository) GetByID(id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := r.withDetails(r.db).First(&purchase, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

// ExistsInvoice 同一供应商下发票号是否已存在
func (r *GormPurchaseRepository) ExistsInvoice(distributorID uint, invoiceNo string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Purchase{}).
		Where("distributor_id = ? AND invoice_no = ?", distributorID, invoiceNo).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 采购单列表
func (r *GormPurchaseRepository) List(filter PurchaseListFilter) ([]models.Purchase, int64, error) {
	var purchases []models.Purchase
	query := r.db.Model(&models.Purchase{})
	if filter.DistributorID != 0 {
		query = query.Where("distributor_id = ?", filter.DistributorID)
	}
	if filter.InvoiceNo != "" {
		query = query.Where("invoice_no = ?", filter.InvoiceNo)
	}
	if filter.DateFrom != nil {
		query = query.Where("purchase_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("purchase_date <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := r.withDetails(query).Order("purchase_date desc, id desc").Find(&purchases).Error; err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

// Delete 删除采购单及其采购行（不回滚库存）
func (r *GormPurchaseRepository) Delete(id uint) (int64, error) {
	if err := r.db.Where("purchase_id = ?", id).Delete(&models.PurchaseItem{}).Error; err != nil {
		return 0, err
	}
	result := r.db.Delete(&models.Purchase{}, id)
	return result.RowsAffected, result.Error
}
