package cache

import (
	"context"
	"fmt"
	"time"
)

const cartCountTTL = 30 * time.Minute

const lowStockSnapshotKey = "inventory:low_stock"

// LowStockEntry 低库存快照条目（对外 ID 已编码）
type LowStockEntry struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
}

// LowStockSnapshot 低库存快照
type LowStockSnapshot struct {
	Threshold   int             `json:"threshold"`
	Items       []LowStockEntry `json:"items"`
	RefreshedAt time.Time       `json:"refreshed_at"`
}

func cartCountKey(customerID uint) string {
	return fmt.Sprintf("cart:count:%d", customerID)
}

// GetCartCount 读取购物车行数缓存
func GetCartCount(ctx context.Context, customerID uint) (int64, bool, error) {
	if customerID == 0 {
		return 0, false, nil
	}
	var count int64
	hit, err := GetJSON(ctx, cartCountKey(customerID), &count)
	if err != nil || !hit {
		return 0, hit, err
	}
	return count, true, nil
}

// SetCartCount 写入购物车行数缓存
func SetCartCount(ctx context.Context, customerID uint, count int64) error {
	if customerID == 0 {
		return nil
	}
	return SetJSON(ctx, cartCountKey(customerID), count, cartCountTTL)
}

// InvalidateCartCount 购物车变动后失效行数缓存
func InvalidateCartCount(ctx context.Context, customerID uint) error {
	if customerID == 0 {
		return nil
	}
	return Del(ctx, cartCountKey(customerID))
}

// GetLowStockSnapshot 读取低库存快照
func GetLowStockSnapshot(ctx context.Context) (*LowStockSnapshot, bool, error) {
	var snapshot LowStockSnapshot
	hit, err := GetJSON(ctx, lowStockSnapshotKey, &snapshot)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &snapshot, true, nil
}

// SetLowStockSnapshot 写入低库存快照
func SetLowStockSnapshot(ctx context.Context, snapshot *LowStockSnapshot, ttl time.Duration) error {
	if snapshot == nil {
		return nil
	}
	return SetJSON(ctx, lowStockSnapshotKey, snapshot, ttl)
}
