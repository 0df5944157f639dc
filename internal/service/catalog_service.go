package service

import (
	"strings"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/repository"
)

// ProductListInput 药品列表查询输入
type ProductListInput struct {
	Page        int
	PageSize    int
	CategoryID  uint
	Search      string
	InStockOnly bool
}

// ProductInput 后台药品创建/编辑输入
type ProductInput struct {
	CategoryID   uint
	Name         string
	Price        models.Money
	Description  string
	Images       []string
	InitialStock int
}

// DistributorInput 供应商创建输入
type DistributorInput struct {
	Name    string
	Phone   string
	Address string
}

// CatalogService 目录读取与基础资料维护
type CatalogService struct {
	productRepo     repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	methodRepo      repository.MethodRepository
	distributorRepo repository.DistributorRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, methodRepo repository.MethodRepository, distributorRepo repository.DistributorRepository) *CatalogService {
	return &CatalogService{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		methodRepo:      methodRepo,
		distributorRepo: distributorRepo,
	}
}

// ListProducts 药品列表（含实时库存）
func (s *CatalogService) ListProducts(input ProductListInput) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		CategoryID:   input.CategoryID,
		Search:       strings.TrimSpace(input.Search),
		InStockOnly:  input.InStockOnly,
		WithCategory: true,
	})
}

// GetProduct 按 ID 读取药品
func (s *CatalogService) GetProduct(productID uint) (*models.Product, error) {
	if productID == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct 新建药品；库存只能设置开账数量，之后仅随出入库变动
func (s *CatalogService) CreateProduct(principal Principal, input ProductInput) (*models.Product, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	if input.InitialStock < 0 || input.InitialStock > constants.MaxProductStock {
		return nil, ErrInvalidQuantity
	}
	product := &models.Product{Stock: input.InitialStock}
	if err := s.applyProductInput(product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	logger.Infow("product_created", "product_id", product.ID, "staff_id", principal.ID, "stock", product.Stock)
	return s.productRepo.GetByID(product.ID)
}

// UpdateProduct 编辑药品基础信息，不改变库存
func (s *CatalogService) UpdateProduct(principal Principal, productID uint, input ProductInput) (*models.Product, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if err := s.applyProductInput(product, input); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(product.ID)
}

// DeleteProduct 物理删除药品；历史订单行保留名称与价格快照
func (s *CatalogService) DeleteProduct(principal Principal, productID uint) error {
	if err := requireStaff(principal); err != nil {
		return err
	}
	if productID == 0 {
		return ErrProductNotFound
	}
	affected, err := s.productRepo.Delete(productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	logger.Infow("product_deleted", "product_id", productID, "staff_id", principal.ID)
	return nil
}

func (s *CatalogService) applyProductInput(product *models.Product, input ProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrInvalidInput
	}
	if !input.Price.IsPositive() {
		return ErrInvalidAmount
	}
	images := make([]string, 0, len(input.Images))
	for _, image := range input.Images {
		if trimmed := strings.TrimSpace(image); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	if len(images) > models.MaxProductImages {
		return ErrTooManyImages
	}
	if input.CategoryID == 0 {
		return ErrCategoryNotFound
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	product.CategoryID = category.ID
	product.Category = category
	product.Name = name
	product.PriceAmount = models.NewMoneyFromDecimal(input.Price.Decimal)
	product.Description = strings.TrimSpace(input.Description)
	product.Images = models.StringArray(images)
	return nil
}

// ListCategories 分类列表
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// ListPaymentMethods 启用的支付方式
func (s *CatalogService) ListPaymentMethods() ([]models.PaymentMethod, error) {
	return s.methodRepo.ListPaymentMethods(true)
}

// ListShippingMethods 启用的配送方式
func (s *CatalogService) ListShippingMethods() ([]models.ShippingMethod, error) {
	return s.methodRepo.ListShippingMethods(true)
}

// ListDistributors 供应商列表
func (s *CatalogService) ListDistributors(principal Principal) ([]models.Distributor, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	return s.distributorRepo.List()
}

// CreateDistributor 新建供应商，名称不区分大小写唯一
func (s *CatalogService) CreateDistributor(principal Principal, input DistributorInput) (*models.Distributor, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	existing, err := s.distributorRepo.List()
	if err != nil {
		return nil, err
	}
	for _, item := range existing {
		if strings.EqualFold(item.Name, name) {
			return nil, ErrDistributorExists
		}
	}
	distributor := &models.Distributor{
		Name:    name,
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
	}
	if err := s.distributorRepo.Create(distributor); err != nil {
		return nil, err
	}
	return distributor, nil
}
