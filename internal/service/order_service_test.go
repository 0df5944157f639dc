package service

import (
	"testing"

	"github.com/xinna-pharma/internal/constants"

	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusAllowsAnyOverride(t *testing.T) {
	f := setupShopFixture(t)
	order := placeTestOrder(t, f, "override")

	updated, err := f.orders.UpdateOrderStatus(f.staff, order.ID, constants.OrderStatusCompleted)
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusCompleted, updated.Status)

	updated, err = f.orders.UpdateOrderStatus(f.staff, order.ID, " Awaiting_Confirmation ")
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusAwaitingConfirmation, updated.Status)

	_, err = f.orders.UpdateOrderStatus(f.staff, order.ID, "shipped")
	require.ErrorIs(t, err, ErrInvalidOrderStatus)
	_, err = f.orders.UpdateOrderStatus(CustomerPrincipal(order.CustomerID), order.ID, constants.OrderStatusProcessing)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateOrderStatusStrictMode(t *testing.T) {
	f := setupShopFixtureWithOptions(t, shopFixtureOptions{strictStatusTransitions: true})
	order := placeTestOrder(t, f, "strict")

	_, err := f.orders.UpdateOrderStatus(f.staff, order.ID, constants.OrderStatusCompleted)
	require.ErrorIs(t, err, ErrOrderStatusTransition)

	_, err = f.orders.UpdateOrderStatus(f.staff, order.ID, constants.OrderStatusProcessing)
	require.NoError(t, err)
}

func TestStatusOverrideHasNoStockSideEffects(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "sideeffect")
	product := f.createProduct(t, "Antiseptic", 1500, 5)
	f.addToCart(t, customer, product.ID, 2)
	result, err := f.checkout.PlaceOrder(customer, f.placeOrderInput(0))
	require.NoError(t, err)

	_, err = f.orders.UpdateOrderStatus(f.staff, result.Order.ID, constants.OrderStatusCancelledBySeller)
	require.NoError(t, err)
	require.Equal(t, 3, f.stockOf(t, product.ID))
}

func TestCancelByCustomerRestoresStock(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "cancel")
	product := f.createProduct(t, "Antibiotic", 2000, 5)
	f.addToCart(t, customer, product.ID, 4)
	result, err := f.checkout.PlaceOrder(customer, f.placeOrderInput(0))
	require.NoError(t, err)
	require.Equal(t, 1, f.stockOf(t, product.ID))

	stranger := f.createCustomer(t, "stranger")
	_, err = f.orders.CancelByCustomer(stranger, result.Order.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)

	cancelled, err := f.orders.CancelByCustomer(customer, result.Order.ID)
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusCancelledByBuyer, cancelled.Status)
	require.Equal(t, 5, f.stockOf(t, product.ID))

	_, err = f.orders.CancelByCustomer(customer, result.Order.ID)
	require.ErrorIs(t, err, ErrOrderNotCancelable)
	require.Equal(t, 5, f.stockOf(t, product.ID))
}

func TestListOrdersScopesByPrincipal(t *testing.T) {
	f := setupShopFixture(t)
	first := placeTestOrder(t, f, "alpha")
	placeTestOrder(t, f, "beta")

	all, total, err := f.orders.ListOrders(f.staff, OrderListInput{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, all, 2)

	mine, total, err := f.orders.ListOrdersForCustomer(CustomerPrincipal(first.CustomerID), OrderListInput{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, first.ID, mine[0].ID)

	_, _, err = f.orders.ListOrders(CustomerPrincipal(first.CustomerID), OrderListInput{})
	require.ErrorIs(t, err, ErrUnauthorized)
	_, _, err = f.orders.ListOrdersForCustomer(f.staff, OrderListInput{})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.orders.GetOrder(CustomerPrincipal(first.CustomerID+1000), first.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)

	_, _, err = f.orders.ListOrders(f.staff, OrderListInput{Status: "bogus"})
	require.ErrorIs(t, err, ErrInvalidOrderStatus)
}
