package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/metrics"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/queue"
	"github.com/xinna-pharma/internal/repository"

	"gorm.io/gorm"
)

// PurchaseLineInput 采购行输入
type PurchaseLineInput struct {
	ProductID uint
	Quantity  int
	UnitCost  models.Money
}

// RecordPurchaseInput 采购入库输入
type RecordPurchaseInput struct {
	DistributorID uint
	InvoiceNo     string
	PurchaseDate  time.Time
	Lines         []PurchaseLineInput
}

// PurchaseListInput 采购单列表查询输入
type PurchaseListInput struct {
	Page          int
	PageSize      int
	DistributorID uint
	InvoiceNo     string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// PurchaseService 采购入库服务
type PurchaseService struct {
	purchaseRepo    repository.PurchaseRepository
	productRepo     repository.ProductRepository
	distributorRepo repository.DistributorRepository
	queueClient     *queue.Client
	metrics         *metrics.ShopMetrics
}

// NewPurchaseService 创建采购入库服务
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, productRepo repository.ProductRepository, distributorRepo repository.DistributorRepository, queueClient *queue.Client, shopMetrics *metrics.ShopMetrics) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:    purchaseRepo,
		productRepo:     productRepo,
		distributorRepo: distributorRepo,
		queueClient:     queueClient,
		metrics:         shopMetrics,
	}
}

// RecordPurchase 登记采购单并逐行增加库存；小计与合计由服务端重算，任一药品不存在则整单回滚
func (s *PurchaseService) RecordPurchase(principal Principal, input RecordPurchaseInput) (*models.Purchase, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	if len(input.Lines) == 0 {
		return nil, ErrPurchaseLinesEmpty
	}
	invoiceNo := strings.TrimSpace(input.InvoiceNo)
	if invoiceNo == "" || input.PurchaseDate.IsZero() {
		return nil, ErrInvalidInput
	}
	if input.DistributorID == 0 {
		return nil, ErrDistributorNotFound
	}

	items := make([]models.PurchaseItem, 0, len(input.Lines))
	total := models.NewMoneyFromInt(0)
	units := 0
	for _, line := range input.Lines {
		if line.ProductID == 0 {
			return nil, ErrProductNotFound
		}
		if line.Quantity < 1 || line.Quantity > constants.MaxLineQuantity {
			return nil, ErrInvalidQuantity
		}
		if line.UnitCost.IsNegative() {
			return nil, ErrInvalidAmount
		}
		unitCost := models.NewMoneyFromDecimal(line.UnitCost.Decimal)
		subtotal := unitCost.MulQuantity(line.Quantity)
		items = append(items, models.PurchaseItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitCost:  unitCost,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
		units += line.Quantity
	}

	purchase := &models.Purchase{
		DistributorID: input.DistributorID,
		InvoiceNo:     invoiceNo,
		PurchaseDate:  input.PurchaseDate,
		TotalAmount:   total,
		RecordedBy:    principal.ID,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		purchaseRepo := s.purchaseRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		distributor, err := s.distributorRepo.WithTx(tx).GetByID(input.DistributorID)
		if err != nil {
			return err
		}
		if distributor == nil {
			return ErrDistributorNotFound
		}
		exists, err := purchaseRepo.ExistsInvoice(input.DistributorID, invoiceNo)
		if err != nil {
			return err
		}
		if exists {
			return ErrPurchaseInvoiceExists
		}

		// 同一药品可能出现在多行，按累计入库量校验库存上限
		incoming := make(map[uint]int, len(items))
		for _, item := range items {
			product, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: purchase line product %d", ErrProductNotFound, item.ProductID)
			}
			incoming[item.ProductID] += item.Quantity
			if incoming[item.ProductID] > constants.MaxProductStock-product.Stock {
				return fmt.Errorf("%w: stock ceiling exceeded for product %d", ErrInvalidQuantity, item.ProductID)
			}
		}
		if err := purchaseRepo.Create(purchase, items); err != nil {
			return err
		}
		for _, item := range items {
			affected, err := productRepo.IncrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return fmt.Errorf("%w: purchase line product %d", ErrProductNotFound, item.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddStockMovement(constants.StockDirectionIn, units)
	if err := s.queueClient.EnqueueLowStockRefresh(queue.LowStockRefreshPayload{Reason: "purchase"}); err != nil {
		logger.Warnw("purchase_enqueue_low_stock_refresh_failed", "purchase_id", purchase.ID, "error", err)
	}
	logger.Infow("purchase_recorded",
		"purchase_id", purchase.ID,
		"distributor_id", purchase.DistributorID,
		"invoice_no", purchase.InvoiceNo,
		"lines", len(items),
		"units", units,
		"total_amount", purchase.TotalAmount.String(),
		"staff_id", principal.ID,
	)
	return s.purchaseRepo.GetByID(purchase.ID)
}

// GetPurchase 采购单详情
func (s *PurchaseService) GetPurchase(principal Principal, purchaseID uint) (*models.Purchase, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	if purchaseID == 0 {
		return nil, ErrPurchaseNotFound
	}
	purchase, err := s.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, ErrPurchaseNotFound
	}
	return purchase, nil
}

// ListPurchases 采购单列表
func (s *PurchaseService) ListPurchases(principal Principal, input PurchaseListInput) ([]models.Purchase, int64, error) {
	if err := requireStaff(principal); err != nil {
		return nil, 0, err
	}
	return s.purchaseRepo.List(repository.PurchaseListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		DistributorID: input.DistributorID,
		InvoiceNo:     strings.TrimSpace(input.InvoiceNo),
		DateFrom:      input.DateFrom,
		DateTo:        input.DateTo,
	})
}

// DeletePurchase 删除采购单及采购行；已入库的数量不会从库存中扣回
func (s *PurchaseService) DeletePurchase(principal Principal, purchaseID uint) error {
	if err := requireStaff(principal); err != nil {
		return err
	}
	if purchaseID == 0 {
		return ErrPurchaseNotFound
	}
	var units int
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		purchaseRepo := s.purchaseRepo.WithTx(tx)
		purchase, err := purchaseRepo.GetByID(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return ErrPurchaseNotFound
		}
		for _, item := range purchase.Items {
			units += item.Quantity
		}
		_, err = purchaseRepo.Delete(purchaseID)
		return err
	})
	if err != nil {
		return err
	}
	// TODO: 待确认删除进货单是否应回退库存后，在事务内扣回 units
	logger.Warnw("purchase_deleted_stock_not_reverted",
		"purchase_id", purchaseID,
		"units_kept_in_stock", units,
		"staff_id", principal.ID,
	)
	return nil
}
