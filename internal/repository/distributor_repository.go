package repository

import (
	"errors"

	"github.com/xinna-pharma/internal/models"

	"gorm.io/gorm"
)

// DistributorRepository 供应商数据访问接口
type DistributorRepository interface {
	GetByID(id uint) (*models.Distributor, error)
	List() ([]models.Distributor, error)
	Create(distributor *models.Distributor) error
	WithTx(tx *gorm.DB) DistributorRepository
}

// GormDistributorRepository GORM 实现
type GormDistributorRepository struct {
	db *gorm.DB
}

// NewDistributorRepository 创建供应商仓库
func NewDistributorRepository(db *gorm.DB) *GormDistributorRepository {
	return &GormDistributorRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDistributorRepository) WithTx(tx *gorm.DB) DistributorRepository {
	if tx == nil {
		return r
	}
	return &GormDistributorRepository{db: tx}
}

// GetByID 根据 ID 获取供应商
func (r *GormDistributorRepository) GetByID(id uint) (*models.Distributor, error) {
	var distributor models.Distributor
	if err := r.db.First(&distributor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &distributor, nil
}

// List 供应商列表
func (r *GormDistributorRepository) List() ([]models.Distributor, error) {
	var distributors []models.Distributor
	if err := r.db.Order("name asc").Find(&distributors).Error; err != nil {
		return nil, err
	}
	return distributors, nil
}

// Create 创建供应商
func (r *GormDistributorRepository) Create(distributor *models.Distributor) error {
	return r.db.Create(distributor).Error
}
