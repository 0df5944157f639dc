package service

import (
	"strings"

	"github.com/xinna-pharma/internal/constants"
)

// orderStatusTransitions 正常履约流转图；终态没有后继
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusAwaitingConfirmation: {
		constants.OrderStatusProcessing,
		constants.OrderStatusAwaitingCourier,
		constants.OrderStatusCancelledByBuyer,
		constants.OrderStatusCancelledBySeller,
		constants.OrderStatusFlagged,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusAwaitingCourier,
		constants.OrderStatusCancelledByBuyer,
		constants.OrderStatusCancelledBySeller,
		constants.OrderStatusFlagged,
	},
	constants.OrderStatusAwaitingCourier: {
		constants.OrderStatusCompleted,
		constants.OrderStatusCancelledByBuyer,
		constants.OrderStatusCancelledBySeller,
		constants.OrderStatusFlagged,
	},
}

// NormalizeOrderStatus 规范化状态值
func NormalizeOrderStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// IsValidOrderStatus 是否为已定义的订单状态
func IsValidOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusAwaitingConfirmation,
		constants.OrderStatusProcessing,
		constants.OrderStatusAwaitingCourier,
		constants.OrderStatusCompleted,
		constants.OrderStatusCancelledByBuyer,
		constants.OrderStatusCancelledBySeller,
		constants.OrderStatusFlagged:
		return true
	default:
		return false
	}
}

// IsTerminalOrderStatus 是否为终态
func IsTerminalOrderStatus(status string) bool {
	_, ok := orderStatusTransitions[status]
	return IsValidOrderStatus(status) && !ok
}

// CanTransitionOrderStatus 按流转图判断状态是否可变更；相同状态视为允许
func CanTransitionOrderStatus(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range orderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
