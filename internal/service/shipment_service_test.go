package service

import (
	"testing"
	"time"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/models"

	"github.com/stretchr/testify/require"
)

func placeTestOrder(t *testing.T, f *shopFixture, name string) *models.Order {
	t.Helper()
	customer := f.createCustomer(t, name)
	product := f.createProduct(t, "product-"+name, 1000, 10)
	f.addToCart(t, customer, product.ID, 1)
	result, err := f.checkout.PlaceOrder(customer, f.placeOrderInput(0))
	require.NoError(t, err)
	return result.Order
}

func TestRecordShipmentMovesOrderToAwaitingCourier(t *testing.T) {
	f := setupShopFixture(t)
	order := placeTestOrder(t, f, "ship")
	_, err := f.orders.UpdateOrderStatus(f.staff, order.ID, constants.OrderStatusProcessing)
	require.NoError(t, err)

	pending, _, err := f.orders.ListPendingOrders(f.staff, 1, 20)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	shipment, err := f.shipments.RecordShipment(f.staff, RecordShipmentInput{
		OrderID:   order.ID,
		ShippedAt: time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC),
		Note:      "JNE 1234567890",
	})
	require.NoError(t, err)
	require.Equal(t, f.staff.ID, shipment.StaffID)

	reloaded, err := f.orders.GetOrder(f.staff, order.ID)
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusAwaitingCourier, reloaded.Status)
	require.NotNil(t, reloaded.Shipment)

	var count int64
	require.NoError(t, f.db.Model(&models.Shipment{}).Where("order_id = ?", order.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)

	pending, total, err := f.orders.ListPendingOrders(f.staff, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
	require.Empty(t, pending)

	_, err = f.shipments.RecordShipment(f.staff, RecordShipmentInput{OrderID: order.ID})
	require.ErrorIs(t, err, ErrShipmentExists)

	shipments, total, err := f.shipments.ListShipments(f.staff, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, shipments, 1)
}

func TestRecordShipmentRequiresStaff(t *testing.T) {
	f := setupShopFixture(t)
	order := placeTestOrder(t, f, "noship")

	_, err := f.shipments.RecordShipment(CustomerPrincipal(order.CustomerID), RecordShipmentInput{OrderID: order.ID})
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.shipments.RecordShipment(Principal{}, RecordShipmentInput{OrderID: order.ID})
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.shipments.RecordShipment(f.staff, RecordShipmentInput{OrderID: order.ID + 100})
	require.ErrorIs(t, err, ErrOrderNotFound)

	require.Equal(t, int64(0), f.countRows(t, &models.Shipment{}))
}
