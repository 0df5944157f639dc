package service

import (
	"context"

	"github.com/xinna-pharma/internal/cache"
	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/repository"

	"gorm.io/gorm"
)

// AddToCartInput 加入购物车输入
type AddToCartInput struct {
	ProductID uint
	Quantity  int
}

// CartSummary 购物车列表结果
type CartSummary struct {
	Items       []models.CartItem
	ItemsAmount models.Money
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart 加入购物车；同一药品已在购物车时合并数量，单价沿用首次加入时的价格
func (s *CartService) AddToCart(principal Principal, input AddToCartInput) (*models.CartItem, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, err
	}
	if input.ProductID == 0 {
		return nil, ErrProductNotFound
	}
	if input.Quantity < 1 || input.Quantity > constants.MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}

	var itemID uint
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		product, err := productRepo.GetByIDForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		existing, err := cartRepo.GetByCustomerAndProductForUpdate(principal.ID, product.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			if input.Quantity > product.Stock {
				return ErrInsufficientStock
			}
			item := &models.CartItem{
				CustomerID: principal.ID,
				ProductID:  product.ID,
				Quantity:   input.Quantity,
				UnitPrice:  product.PriceAmount,
				Subtotal:   product.PriceAmount.MulQuantity(input.Quantity),
			}
			if err := cartRepo.Create(item); err != nil {
				return err
			}
			itemID = item.ID
			return nil
		}

		// 先比较剩余额度再相加，避免溢出
		if input.Quantity > product.Stock-existing.Quantity {
			return ErrInsufficientStockTotal
		}
		combined := existing.Quantity + input.Quantity
		if err := cartRepo.UpdateQuantity(existing.ID, combined, existing.UnitPrice.MulQuantity(combined)); err != nil {
			return err
		}
		itemID = existing.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(principal.ID)
	return s.cartRepo.GetByID(itemID)
}

// UpdateQuantity 修改购物车行数量，小计按该行保存的单价重算
func (s *CartService) UpdateQuantity(principal Principal, itemID uint, quantity int) (*models.CartItem, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, err
	}
	if itemID == 0 {
		return nil, ErrCartItemNotFound
	}
	if quantity < 1 || quantity > constants.MaxLineQuantity {
		return nil, ErrInvalidQuantity
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		item, err := cartRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.CustomerID != principal.ID {
			return ErrCartItemNotFound
		}
		product, err := s.productRepo.WithTx(tx).GetByIDForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if quantity > product.Stock {
			return ErrInsufficientStock
		}
		return cartRepo.UpdateQuantity(item.ID, quantity, item.UnitPrice.MulQuantity(quantity))
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(principal.ID)
	return s.cartRepo.GetByID(itemID)
}

// Remove 删除购物车行；行不存在或不属于当前顾客时返回 ErrCartItemNotFound
func (s *CartService) Remove(principal Principal, itemID uint) error {
	if err := requireCustomer(principal); err != nil {
		return err
	}
	if itemID == 0 {
		return ErrCartItemNotFound
	}
	affected, err := s.cartRepo.DeleteByIDAndCustomer(itemID, principal.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	s.invalidateCount(principal.ID)
	return nil
}

// List 获取购物车（含药品实时库存）
func (s *CartService) List(principal Principal) (*CartSummary, error) {
	if err := requireCustomer(principal); err != nil {
		return nil, err
	}
	items, err := s.cartRepo.ListByCustomer(principal.ID)
	if err != nil {
		return nil, err
	}
	summary := &CartSummary{Items: items, ItemsAmount: models.NewMoneyFromInt(0)}
	for _, item := range items {
		summary.ItemsAmount = summary.ItemsAmount.Add(item.Subtotal)
	}
	return summary, nil
}

// Count 购物车中不同药品的行数，而非件数
func (s *CartService) Count(principal Principal) (int64, error) {
	if err := requireCustomer(principal); err != nil {
		return 0, err
	}
	ctx := context.Background()
	if count, hit, err := cache.GetCartCount(ctx, principal.ID); err == nil && hit {
		return count, nil
	}
	count, err := s.cartRepo.CountByCustomer(principal.ID)
	if err != nil {
		return 0, err
	}
	if err := cache.SetCartCount(ctx, principal.ID, count); err != nil {
		logger.Debugw("cart_count_cache_set_failed", "customer_id", principal.ID, "error", err)
	}
	return count, nil
}

func (s *CartService) invalidateCount(customerID uint) {
	if err := cache.InvalidateCartCount(context.Background(), customerID); err != nil {
		logger.Warnw("cart_count_cache_invalidate_failed", "customer_id", customerID, "error", err)
	}
}
