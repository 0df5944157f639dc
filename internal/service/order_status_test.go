package service

import (
	"testing"

	"github.com/xinna-pharma/internal/constants"
)

func TestCanTransitionOrderStatus(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.OrderStatusAwaitingConfirmation, constants.OrderStatusProcessing, true},
		{constants.OrderStatusProcessing, constants.OrderStatusAwaitingCourier, true},
		{constants.OrderStatusAwaitingCourier, constants.OrderStatusCompleted, true},
		{constants.OrderStatusProcessing, constants.OrderStatusFlagged, true},
		{constants.OrderStatusAwaitingConfirmation, constants.OrderStatusCompleted, false},
		{constants.OrderStatusCompleted, constants.OrderStatusProcessing, false},
		{constants.OrderStatusCancelledByBuyer, constants.OrderStatusAwaitingConfirmation, false},
		{constants.OrderStatusFlagged, constants.OrderStatusFlagged, true},
	}
	for _, tc := range cases {
		if got := CanTransitionOrderStatus(tc.from, tc.to); got != tc.want {
			t.Fatalf("transition %s -> %s: want %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestOrderStatusClassification(t *testing.T) {
	if IsValidOrderStatus("shipped") {
		t.Fatalf("unknown status should be invalid")
	}
	if NormalizeOrderStatus("  Processing ") != constants.OrderStatusProcessing {
		t.Fatalf("normalize should trim and lowercase")
	}
	for _, status := range []string{
		constants.OrderStatusCompleted,
		constants.OrderStatusCancelledByBuyer,
		constants.OrderStatusCancelledBySeller,
		constants.OrderStatusFlagged,
	} {
		if !IsTerminalOrderStatus(status) {
			t.Fatalf("%s should be terminal", status)
		}
	}
	if IsTerminalOrderStatus(constants.OrderStatusProcessing) {
		t.Fatalf("processing is not terminal")
	}
}
