package worker

import (
	"context"
	"errors"
	"time"

	"github.com/xinna-pharma/internal/config"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/queue"

	"github.com/hibiken/asynq"
)

// Service asynq 消费服务，附带低库存快照的定时兜底刷新
type Service struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
	// refreshEvery 为 0 时不启动定时刷新
	refreshEvery time.Duration
}

// NewService 创建队列消费服务；队列未启用时返回错误
func NewService(cfg *config.Config, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Queue.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(&cfg.Queue)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	svc := &Service{
		server:   asynq.NewServer(opt, serverCfg),
		mux:      mux,
		consumer: consumer,
	}
	if seconds := cfg.Inventory.RefreshIntervalSeconds; seconds > 0 {
		svc.refreshEvery = time.Duration(seconds) * time.Second
	}
	return svc, nil
}

// Name 服务名称
func (s *Service) Name() string {
	return "worker"
}

// Start 启动消费；阻塞直到服务停止
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.refreshEvery > 0 && s.consumer.InventoryService != nil {
		go s.refreshLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止消费，等待进行中的任务结束
func (s *Service) Stop(_ context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}

// refreshLoop 覆盖未经过结算的库存变动（进货、后台改库存）
func (s *Service) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.refreshEvery)
	defer ticker.Stop()
	for {
		if _, err := s.consumer.InventoryService.RefreshLowStockSnapshot(ctx); err != nil {
			logger.Warnw("worker_low_stock_periodic_refresh_failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
