package repository

import (
	"testing"
	"time"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/models"

	"gorm.io/gorm"
)

func createTestOrder(t *testing.T, db *gorm.DB, orderNo, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:          orderNo,
		CustomerID:       1,
		PaymentMethodID:  1,
		ShippingMethodID: 1,
		Status:           status,
		TotalAmount:      models.NewMoneyFromInt(1000),
	}
	if err := NewOrderRepository(db).Create(order, []models.OrderItem{{
		ProductID:   1,
		ProductName: "Paracetamol",
		UnitPrice:   models.NewMoneyFromInt(1000),
		Quantity:    1,
		Subtotal:    models.NewMoneyFromInt(1000),
	}}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestListPendingShipmentExcludesShippedAndClosed(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewOrderRepository(db)

	awaiting := createTestOrder(t, db, "XP-1", constants.OrderStatusAwaitingConfirmation)
	processing := createTestOrder(t, db, "XP-2", constants.OrderStatusProcessing)
	shipped := createTestOrder(t, db, "XP-3", constants.OrderStatusAwaitingCourier)
	createTestOrder(t, db, "XP-4", constants.OrderStatusCompleted)
	createTestOrder(t, db, "XP-5", constants.OrderStatusCancelledByBuyer)

	if err := NewShipmentRepository(db).Create(&models.Shipment{
		OrderID:   shipped.ID,
		StaffID:   1,
		ShippedAt: time.Now(),
	}); err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}

	orders, total, err := repo.ListPendingShipment(1, 20)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("pending want 2, got total=%d len=%d", total, len(orders))
	}
	if orders[0].ID != awaiting.ID || orders[1].ID != processing.ID {
		t.Fatalf("unexpected pending orders: %d, %d", orders[0].ID, orders[1].ID)
	}
	if len(orders[0].Items) != 1 {
		t.Fatalf("expected items preloaded")
	}
}

func TestShipmentUniquePerOrder(t *testing.T) {
	db := setupRepositoryTestDB(t)
	order := createTestOrder(t, db, "XP-9", constants.OrderStatusProcessing)
	repo := NewShipmentRepository(db)

	if err := repo.Create(&models.Shipment{OrderID: order.ID, StaffID: 1, ShippedAt: time.Now()}); err != nil {
		t.Fatalf("first shipment failed: %v", err)
	}
	if err := repo.Create(&models.Shipment{OrderID: order.ID, StaffID: 2, ShippedAt: time.Now()}); err == nil {
		t.Fatalf("expected unique violation on second shipment")
	}
}
