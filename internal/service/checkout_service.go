package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/xinna-pharma/internal/cache"
	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/hashid"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/metrics"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/queue"
	"github.com/xinna-pharma/internal/repository"

	"gorm.io/gorm"
)

// PlaceOrderInput 结算下单输入
type PlaceOrderInput struct {
	PaymentMethodID  uint
	ShippingMethodID uint
	ShippingCost     models.Money
	PlatformFee      models.Money
	RecipientName    string
	RecipientPhone   string
	ShippingAddress  string
	ShippingCity     string
	ShippingPostcode string
}

// PlaceOrderResult 下单结果
type PlaceOrderResult struct {
	Order      *models.Order
	OrderToken string
}

// CheckoutService 结算服务：购物车转订单并扣减库存
type CheckoutService struct {
	cartRepo           repository.CartRepository
	productRepo        repository.ProductRepository
	orderRepo          repository.OrderRepository
	customerRepo       repository.CustomerRepository
	methodRepo         repository.MethodRepository
	codec              *hashid.Codec
	queueClient        *queue.Client
	metrics            *metrics.ShopMetrics
	deriveShippingCost bool
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, methodRepo repository.MethodRepository, codec *hashid.Codec, queueClient *queue.Client, shopMetrics *metrics.ShopMetrics, deriveShippingCost bool) *CheckoutService {
	return &CheckoutService{
		cartRepo:           cartRepo,
		productRepo:        productRepo,
		orderRepo:          orderRepo,
		customerRepo:       customerRepo,
		methodRepo:         methodRepo,
		codec:              codec,
		queueClient:        queueClient,
		metrics:            shopMetrics,
		deriveShippingCost: deriveShippingCost,
	}
}

// PlaceOrder 在单个事务内完成下单：逐行加锁复核库存并扣减、写订单与订单行、同步顾客地址、清空购物车
func (s *CheckoutService) PlaceOrder(principal Principal, input PlaceOrderInput) (*PlaceOrderResult, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, err
	}
	started := time.Now()

	input, err := s.normalizeInput(input)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderNo:          generateOrderNo(),
		CustomerID:       principal.ID,
		PaymentMethodID:  input.PaymentMethodID,
		ShippingMethodID: input.ShippingMethodID,
		Status:           constants.OrderStatusAwaitingConfirmation,
		ShippingCost:     input.ShippingCost,
		PlatformFee:      input.PlatformFee,
		RecipientName:    input.RecipientName,
		RecipientPhone:   input.RecipientPhone,
		ShippingAddress:  input.ShippingAddress,
		ShippingCity:     input.ShippingCity,
		ShippingPostcode: input.ShippingPostcode,
	}
	var unitsOut int

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		lines, err := cartRepo.ListByCustomer(principal.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}
		// 按药品 ID 顺序加锁，避免并发结算互相等待
		sort.Slice(lines, func(i, j int) bool {
			return lines[i].ProductID < lines[j].ProductID
		})

		itemsAmount := models.NewMoneyFromInt(0)
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, err := productRepo.GetByIDForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: cart line %d", ErrProductNotFound, line.ID)
			}
			if product.Stock < line.Quantity {
				return &StockShortageError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Stock,
				}
			}
			affected, err := productRepo.DecrementStock(product.ID, line.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return &StockShortageError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Stock,
				}
			}
			subtotal := line.UnitPrice.MulQuantity(line.Quantity)
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				UnitPrice:   line.UnitPrice,
				Quantity:    line.Quantity,
				Subtotal:    subtotal,
			})
			itemsAmount = itemsAmount.Add(subtotal)
			unitsOut += line.Quantity
		}

		order.ItemsAmount = itemsAmount
		order.TotalAmount = itemsAmount.Add(order.ShippingCost).Add(order.PlatformFee)
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}

		affected, err := s.customerRepo.WithTx(tx).UpdateProfile(principal.ID, repository.CustomerAddress{
			Name:     input.RecipientName,
			Phone:    input.RecipientPhone,
			Address:  input.ShippingAddress,
			City:     input.ShippingCity,
			Postcode: input.ShippingPostcode,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCustomerNotFound
		}

		_, err = cartRepo.ClearByCustomer(principal.ID)
		return err
	})
	if err != nil {
		s.observeFailure(principal.ID, err, time.Since(started))
		return nil, err
	}

	s.metrics.ObserveCheckout(constants.CheckoutResultSuccess, time.Since(started))
	s.metrics.AddStockMovement(constants.StockDirectionOut, unitsOut)
	if err := cache.InvalidateCartCount(context.Background(), principal.ID); err != nil {
		logger.Warnw("cart_count_cache_invalidate_failed", "customer_id", principal.ID, "error", err)
	}
	if err := s.queueClient.EnqueueLowStockRefresh(queue.LowStockRefreshPayload{Reason: "checkout", OrderID: order.ID}); err != nil {
		logger.Warnw("checkout_enqueue_low_stock_refresh_failed", "order_id", order.ID, "error", err)
	}
	logger.Infow("checkout_order_placed",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"customer_id", principal.ID,
		"lines", len(order.Items),
		"total_amount", order.TotalAmount.String(),
	)

	return &PlaceOrderResult{
		Order:      order,
		OrderToken: s.codec.Encode(order.ID),
	}, nil
}

func (s *CheckoutService) normalizeInput(input PlaceOrderInput) (PlaceOrderInput, error) {
	input.RecipientName = strings.TrimSpace(input.RecipientName)
	input.RecipientPhone = strings.TrimSpace(input.RecipientPhone)
	input.ShippingAddress = strings.TrimSpace(input.ShippingAddress)
	input.ShippingCity = strings.TrimSpace(input.ShippingCity)
	input.ShippingPostcode = strings.TrimSpace(input.ShippingPostcode)
	if input.RecipientName == "" || input.ShippingAddress == "" {
		return input, ErrInvalidInput
	}
	if input.ShippingCost.IsNegative() || input.PlatformFee.IsNegative() {
		return input, ErrInvalidAmount
	}

	if input.PaymentMethodID == 0 {
		return input, ErrPaymentMethodNotFound
	}
	payment, err := s.methodRepo.GetPaymentMethod(input.PaymentMethodID)
	if err != nil {
		return input, err
	}
	if payment == nil || !payment.IsActive {
		return input, ErrPaymentMethodNotFound
	}

	if input.ShippingMethodID == 0 {
		return input, ErrShippingMethodNotFound
	}
	shipping, err := s.methodRepo.GetShippingMethod(input.ShippingMethodID)
	if err != nil {
		return input, err
	}
	if shipping == nil || !shipping.IsActive {
		return input, ErrShippingMethodNotFound
	}
	if s.deriveShippingCost {
		input.ShippingCost = shipping.Cost
	}
	input.ShippingCost = models.NewMoneyFromDecimal(input.ShippingCost.Decimal)
	input.PlatformFee = models.NewMoneyFromDecimal(input.PlatformFee.Decimal)
	return input, nil
}

func (s *CheckoutService) observeFailure(customerID uint, err error, elapsed time.Duration) {
	var shortage *StockShortageError
	switch {
	case errors.Is(err, ErrCartEmpty):
		s.metrics.ObserveCheckout(constants.CheckoutResultCartEmpty, elapsed)
	case errors.As(err, &shortage):
		s.metrics.ObserveCheckout(constants.CheckoutResultStockShortage, elapsed)
		logger.Infow("checkout_stock_shortage",
			"customer_id", customerID,
			"product_id", shortage.ProductID,
			"requested", shortage.Requested,
			"available", shortage.Available,
		)
	default:
		s.metrics.ObserveCheckout(constants.CheckoutResultError, elapsed)
		if !IsNotFound(err) {
			logger.Errorw("checkout_failed", "customer_id", customerID, "error", err)
		}
	}
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("XP%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
