package worker

import (
	"context"
	"encoding/json"

	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/provider"
	"github.com/xinna-pharma/internal/queue"
	"github.com/xinna-pharma/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	InventoryService *service.InventoryService
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	if c == nil {
		return &Consumer{}
	}
	return &Consumer{
		InventoryService: c.InventoryService,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskLowStockRefresh, c.handleLowStockRefresh)
}

func (c *Consumer) handleLowStockRefresh(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil || c.InventoryService == nil {
		logger.Debugw("worker_low_stock_refresh_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.LowStockRefreshPayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logger.Warnw("worker_low_stock_refresh_unmarshal_failed", "error", err)
			// 载荷损坏重试也无法恢复
			return asynq.SkipRetry
		}
	}
	snapshot, err := c.InventoryService.RefreshLowStockSnapshot(ctx)
	if err != nil {
		logger.Warnw("worker_low_stock_refresh_failed", "reason", payload.Reason, "order_id", payload.OrderID, "error", err)
		return err
	}
	logger.Infow("worker_low_stock_refreshed",
		"reason", payload.Reason,
		"order_id", payload.OrderID,
		"items", len(snapshot.Items),
	)
	return nil
}
