package service

import (
	"errors"
	"fmt"
)

// 主体与权限
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrEmailExists        = errors.New("email already registered")
	ErrWeakPassword       = errors.New("weak password")
)

// 资源不存在
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCartItemNotFound       = errors.New("cart item not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrPurchaseNotFound       = errors.New("purchase not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrDistributorNotFound    = errors.New("distributor not found")
	ErrPaymentMethodNotFound  = errors.New("payment method not found")
	ErrShippingMethodNotFound = errors.New("shipping method not found")
)

// 库存与购物车
var (
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInsufficientStockTotal = errors.New("insufficient stock for combined cart quantity")
	ErrCartEmpty              = errors.New("cart is empty")
)

// 参数校验
var (
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidInput          = errors.New("invalid input")
	ErrTooManyImages         = errors.New("too many product images")
	ErrPurchaseLinesEmpty    = errors.New("purchase requires at least one line")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
	ErrOrderStatusTransition = errors.New("order status transition not allowed")
	ErrOrderNotCancelable    = errors.New("order can no longer be cancelled")
)

// 冲突
var (
	ErrShipmentExists        = errors.New("order already has a shipment")
	ErrPurchaseInvoiceExists = errors.New("invoice already recorded for distributor")
	ErrDistributorExists     = errors.New("distributor already exists")
)

// StockShortageError 结算事务内发现的库存不足，携带药品信息
type StockShortageError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.ProductName, e.Requested, e.Available)
}

// Is 使 errors.Is(err, ErrInsufficientStock) 成立
func (e *StockShortageError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// IsNotFound 判断是否属于资源不存在类错误
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrProductNotFound,
		ErrCategoryNotFound,
		ErrCartItemNotFound,
		ErrOrderNotFound,
		ErrPurchaseNotFound,
		ErrCustomerNotFound,
		ErrDistributorNotFound,
		ErrPaymentMethodNotFound,
		ErrShippingMethodNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
