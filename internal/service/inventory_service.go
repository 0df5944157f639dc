package service

import (
	"context"
	"time"

	"github.com/xinna-pharma/internal/cache"
	"github.com/xinna-pharma/internal/hashid"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/repository"
)

const (
	defaultLowStockThreshold = 10
	defaultLowStockCacheTTL  = 5 * time.Minute
	lowStockSnapshotLimit    = 200
)

// InventoryService 低库存快照服务
type InventoryService struct {
	productRepo repository.ProductRepository
	codec       *hashid.Codec
	threshold   int
	cacheTTL    time.Duration
}

// NewInventoryService 创建库存服务
func NewInventoryService(productRepo repository.ProductRepository, codec *hashid.Codec, threshold int, cacheSeconds int) *InventoryService {
	if threshold <= 0 {
		threshold = defaultLowStockThreshold
	}
	ttl := defaultLowStockCacheTTL
	if cacheSeconds > 0 {
		ttl = time.Duration(cacheSeconds) * time.Second
	}
	return &InventoryService{
		productRepo: productRepo,
		codec:       codec,
		threshold:   threshold,
		cacheTTL:    ttl,
	}
}

// LowStockSnapshot 员工查看低库存药品；优先读缓存，未命中时查库并回写
func (s *InventoryService) LowStockSnapshot(ctx context.Context, principal Principal) (*cache.LowStockSnapshot, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}
	if snapshot, hit, err := cache.GetLowStockSnapshot(ctx); err == nil && hit {
		return snapshot, nil
	} else if err != nil {
		logger.Warnw("low_stock_snapshot_cache_get_failed", "error", err)
	}
	return s.RefreshLowStockSnapshot(ctx)
}

// RefreshLowStockSnapshot 重新计算低库存快照并写入缓存
func (s *InventoryService) RefreshLowStockSnapshot(ctx context.Context) (*cache.LowStockSnapshot, error) {
	products, err := s.productRepo.ListLowStock(s.threshold, lowStockSnapshotLimit)
	if err != nil {
		return nil, err
	}
	snapshot := &cache.LowStockSnapshot{
		Threshold:   s.threshold,
		Items:       make([]cache.LowStockEntry, 0, len(products)),
		RefreshedAt: time.Now(),
	}
	for _, product := range products {
		snapshot.Items = append(snapshot.Items, cache.LowStockEntry{
			ProductID: s.codec.Encode(product.ID),
			Name:      product.Name,
			Category:  product.CategoryLabel(),
			Stock:     product.Stock,
		})
	}
	if err := cache.SetLowStockSnapshot(ctx, snapshot, s.cacheTTL); err != nil {
		logger.Warnw("low_stock_snapshot_cache_set_failed", "error", err)
	}
	logger.Infow("low_stock_snapshot_refreshed", "threshold", s.threshold, "items", len(snapshot.Items))
	return snapshot, nil
}
