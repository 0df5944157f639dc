package queue

import (
	"encoding/json"

	"github.com/xinna-pharma/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskLowStockRefresh 低库存快照刷新任务
	TaskLowStockRefresh = constants.TaskLowStockRefresh
)

// LowStockRefreshPayload 低库存快照刷新载荷
type LowStockRefreshPayload struct {
	Reason  string `json:"reason"`
	OrderID uint   `json:"order_id,omitempty"`
}

// NewLowStockRefreshTask 创建低库存快照刷新任务
func NewLowStockRefreshTask(payload LowStockRefreshPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockRefresh, body), nil
}
