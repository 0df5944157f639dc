package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/xinna-pharma/internal/config"

	"github.com/hibiken/asynq"
)

func TestDisabledClientSkipsEnqueue(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueLowStockRefresh(LowStockRefreshPayload{Reason: "checkout"}); err != nil {
		t.Fatalf("disabled enqueue should be noop: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	var nilClient *Client
	if nilClient.Enabled() {
		t.Fatalf("nil client should be disabled")
	}
}

func TestNewLowStockRefreshTask(t *testing.T) {
	task, err := NewLowStockRefreshTask(LowStockRefreshPayload{Reason: "checkout", OrderID: 9})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if task.Type() != TaskLowStockRefresh {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	var payload LowStockRefreshPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("decode payload failed: %v", err)
	}
	if payload.OrderID != 9 || payload.Reason != "checkout" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(nil)
	if opt.Addr != "127.0.0.1:6379" {
		t.Fatalf("unexpected addr: %s", opt.Addr)
	}
	if cfg.Concurrency != 5 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}

func TestBuildServerConfigWiresHandlers(t *testing.T) {
	_, cfg := BuildServerConfig(&config.QueueConfig{Concurrency: 3, Queues: map[string]int{"default": 10}})
	if cfg.Concurrency != 3 || cfg.Queues["default"] != 10 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
	if cfg.Logger == nil || cfg.ErrorHandler == nil {
		t.Fatalf("expected logger and error handler to be set")
	}
	// 非任务上下文中也不应 panic
	cfg.ErrorHandler.HandleError(context.Background(), asynq.NewTask(TaskLowStockRefresh, nil), errors.New("boom"))
}
