package service

import (
	"strings"
	"time"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/metrics"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/repository"

	"gorm.io/gorm"
)

// OrderListInput 订单列表查询输入
type OrderListInput struct {
	Page        int
	PageSize    int
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// OrderService 订单查询与状态维护服务
type OrderService struct {
	orderRepo               repository.OrderRepository
	productRepo             repository.ProductRepository
	metrics                 *metrics.ShopMetrics
	strictStatusTransitions bool
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, shopMetrics *metrics.ShopMetrics, strictStatusTransitions bool) *OrderService {
	return &OrderService{
		orderRepo:               orderRepo,
		productRepo:             productRepo,
		metrics:                 shopMetrics,
		strictStatusTransitions: strictStatusTransitions,
	}
}

// ListOrders 后台订单列表
func (s *OrderService) ListOrders(principal Principal, input OrderListInput) ([]models.Order, int64, error) {
	if err := requireStaff(principal); err != nil {
		return nil, 0, err
	}
	filter, err := buildOrderListFilter(input)
	if err != nil {
		return nil, 0, err
	}
	return s.orderRepo.ListAdmin(filter)
}

// ListOrdersForCustomer 顾客订单历史
func (s *OrderService) ListOrdersForCustomer(principal Principal, input OrderListInput) ([]models.Order, int64, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, 0, err
	}
	filter, err := buildOrderListFilter(input)
	if err != nil {
		return nil, 0, err
	}
	filter.CustomerID = principal.ID
	return s.orderRepo.ListByCustomer(filter)
}

// GetOrder 订单详情；顾客只能查看自己的订单
func (s *OrderService) GetOrder(principal Principal, orderID uint) (*models.Order, error) {
	if !principal.IsCustomer() && !principal.IsStaff() {
		return nil, ErrUnauthorized
	}
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	var (
		order *models.Order
		err   error
	)
	if principal.IsStaff() {
		order, err = s.orderRepo.GetByID(orderID)
	} else {
		order, err = s.orderRepo.GetByIDAndCustomer(orderID, principal.ID)
	}
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListPendingOrders 待发货订单：可发货状态且尚无发货记录
func (s *OrderService) ListPendingOrders(principal Principal, page, pageSize int) ([]models.Order, int64, error) {
	if err := requireStaff(principal); err != nil {
		return nil, 0, err
	}
	return s.orderRepo.ListPendingShipment(page, pageSize)
}

// UpdateOrderStatus 员工直接改写订单状态；默认允许任意状态间切换，不产生库存副作用
func (s *OrderService) UpdateOrderStatus(principal Principal, orderID uint, status string) (*models.Order, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	target := NormalizeOrderStatus(status)
	if !IsValidOrderStatus(target) {
		return nil, ErrInvalidOrderStatus
	}
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}

	var previous string
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		previous = order.Status
		if s.strictStatusTransitions && !CanTransitionOrderStatus(order.Status, target) {
			return ErrOrderStatusTransition
		}
		_, err = orderRepo.UpdateStatus(order.ID, target)
		return err
	})
	if err != nil {
		return nil, err
	}

	if previous != target && IsTerminalOrderStatus(previous) {
		logger.Warnw("order_status_reopened", "order_id", orderID, "staff_id", principal.ID, "from", previous, "to", target)
	}
	logger.Infow("order_status_overridden",
		"order_id", orderID,
		"staff_id", principal.ID,
		"from", previous,
		"to", target,
	)
	return s.orderRepo.GetByID(orderID)
}

// CancelByCustomer 顾客取消待确认订单，并在同一事务内回补库存
func (s *OrderService) CancelByCustomer(principal Principal, orderID uint) (*models.Order, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, err
	}
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}

	var unitsIn int
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		order, err := orderRepo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil || order.CustomerID != principal.ID {
			return ErrOrderNotFound
		}
		if order.Status != constants.OrderStatusAwaitingConfirmation {
			return ErrOrderNotCancelable
		}
		if _, err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelledByBuyer); err != nil {
			return err
		}
		for _, item := range order.Items {
			affected, err := productRepo.IncrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				logger.Warnw("order_cancel_restock_product_missing",
					"order_id", order.ID,
					"product_id", item.ProductID,
					"quantity", item.Quantity,
				)
				continue
			}
			unitsIn += item.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.AddStockMovement(constants.StockDirectionIn, unitsIn)
	logger.Infow("order_cancelled_by_buyer", "order_id", orderID, "customer_id", principal.ID, "units_restocked", unitsIn)
	return s.orderRepo.GetByIDAndCustomer(orderID, principal.ID)
}

func buildOrderListFilter(input OrderListInput) (repository.OrderListFilter, error) {
	status := NormalizeOrderStatus(input.Status)
	if status != "" && !IsValidOrderStatus(status) {
		return repository.OrderListFilter{}, ErrInvalidOrderStatus
	}
	return repository.OrderListFilter{
		Page:        input.Page,
		PageSize:    input.PageSize,
		Status:      status,
		OrderNo:     strings.TrimSpace(input.OrderNo),
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
	}, nil
}
