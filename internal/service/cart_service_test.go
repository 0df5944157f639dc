package service

import (
	"errors"
	"math"
	"testing"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesSameProduct(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "merge")
	product := f.createProduct(t, "Paracetamol", 1500, 10)

	first := f.addToCart(t, customer, product.ID, 3)
	second := f.addToCart(t, customer, product.ID, 4)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 7, second.Quantity)
	require.True(t, second.Subtotal.Equal(decimal.NewFromInt(1500*7)), "subtotal=%s", second.Subtotal)
	require.Equal(t, int64(1), f.countRows(t, &models.CartItem{}))
}

func TestAddToCartKeepsCapturedUnitPrice(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "reprice")
	product := f.createProduct(t, "Amoxicillin", 1000, 10)

	f.addToCart(t, customer, product.ID, 2)
	require.NoError(t, f.db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price_amount", models.NewMoneyFromInt(4000)).Error)
	item := f.addToCart(t, customer, product.ID, 1)

	require.True(t, item.UnitPrice.Equal(decimal.NewFromInt(1000)))
	require.True(t, item.Subtotal.Equal(decimal.NewFromInt(3000)))
}

func TestAddToCartCombinedQuantityExceedsStock(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "combined")
	product := f.createProduct(t, "Ibuprofen", 2000, 5)

	f.addToCart(t, customer, product.ID, 3)
	_, err := f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID, Quantity: 4})
	require.ErrorIs(t, err, ErrInsufficientStockTotal)

	summary, err := f.cart.List(customer)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	require.Equal(t, 3, summary.Items[0].Quantity)
}

func TestAddToCartHugeQuantityKeepsLineIntact(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "huge")
	product := f.createProduct(t, "Loratadine", 1000, 5)
	f.addToCart(t, customer, product.ID, 3)

	_, err := f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID, Quantity: math.MaxInt})
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID, Quantity: constants.MaxLineQuantity})
	require.ErrorIs(t, err, ErrInsufficientStockTotal)

	summary, err := f.cart.List(customer)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	require.Equal(t, 3, summary.Items[0].Quantity)
	require.True(t, summary.Items[0].Subtotal.Equal(decimal.NewFromInt(3000)), "subtotal=%s", summary.Items[0].Subtotal)

	result, err := f.checkout.PlaceOrder(customer, f.placeOrderInput(0))
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	require.Equal(t, 2, f.stockOf(t, product.ID))
}

func TestAddToCartFreshLineAtStockBoundary(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "boundary")
	product := f.createProduct(t, "Salbutamol", 500, constants.MaxLineQuantity)

	_, err := f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID, Quantity: constants.MaxLineQuantity + 1})
	require.ErrorIs(t, err, ErrInvalidQuantity)
	item := f.addToCart(t, customer, product.ID, constants.MaxLineQuantity)
	require.Equal(t, constants.MaxLineQuantity, item.Quantity)

	_, err = f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID, Quantity: 1})
	require.ErrorIs(t, err, ErrInsufficientStockTotal)
}

func TestAddToCartValidation(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "validation")
	product := f.createProduct(t, "Cetirizine", 800, 2)

	_, err := f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID, Quantity: 3})
	require.ErrorIs(t, err, ErrInsufficientStock)

	_, err = f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID, Quantity: 0})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = f.cart.AddToCart(customer, AddToCartInput{ProductID: product.ID + 100, Quantity: 1})
	require.ErrorIs(t, err, ErrProductNotFound)

	require.Equal(t, int64(0), f.countRows(t, &models.CartItem{}))
}

func TestCartRejectsNonCustomerPrincipals(t *testing.T) {
	f := setupShopFixture(t)
	product := f.createProduct(t, "Loratadine", 900, 5)

	for _, principal := range []Principal{{}, f.staff} {
		_, err := f.cart.AddToCart(principal, AddToCartInput{ProductID: product.ID, Quantity: 1})
		require.ErrorIs(t, err, ErrUnauthorized)
		_, err = f.cart.List(principal)
		require.ErrorIs(t, err, ErrUnauthorized)
		_, err = f.cart.Count(principal)
		require.ErrorIs(t, err, ErrUnauthorized)
		require.ErrorIs(t, f.cart.Remove(principal, 1), ErrUnauthorized)
		_, err = f.cart.UpdateQuantity(principal, 1, 1)
		require.ErrorIs(t, err, ErrUnauthorized)
	}
}

func TestUpdateQuantityRecomputesSubtotal(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "update")
	product := f.createProduct(t, "Omeprazole", 2500, 6)
	item := f.addToCart(t, customer, product.ID, 1)

	updated, err := f.cart.UpdateQuantity(customer, item.ID, 6)
	require.NoError(t, err)
	require.Equal(t, 6, updated.Quantity)
	require.True(t, updated.Subtotal.Equal(decimal.NewFromInt(15000)))

	_, err = f.cart.UpdateQuantity(customer, item.ID, 7)
	require.ErrorIs(t, err, ErrInsufficientStock)
	_, err = f.cart.UpdateQuantity(customer, item.ID, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = f.cart.UpdateQuantity(customer, item.ID, math.MaxInt)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	summary, err := f.cart.List(customer)
	require.NoError(t, err)
	require.Equal(t, 6, summary.Items[0].Quantity)

	other := f.createCustomer(t, "intruder")
	_, err = f.cart.UpdateQuantity(other, item.ID, 1)
	require.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestRemoveAndCountCartLines(t *testing.T) {
	f := setupShopFixture(t)
	customer := f.createCustomer(t, "remove")
	p1 := f.createProduct(t, "Vitamin C", 500, 20)
	p2 := f.createProduct(t, "Zinc", 700, 20)

	first := f.addToCart(t, customer, p1.ID, 5)
	f.addToCart(t, customer, p2.ID, 1)

	count, err := f.cart.Count(customer)
	require.NoError(t, err)
	require.Equal(t, int64(2), count, "count is distinct lines, not units")

	other := f.createCustomer(t, "stranger")
	require.ErrorIs(t, f.cart.Remove(other, first.ID), ErrCartItemNotFound)

	require.NoError(t, f.cart.Remove(customer, first.ID))
	err = f.cart.Remove(customer, first.ID)
	require.True(t, errors.Is(err, ErrCartItemNotFound))

	count, err = f.cart.Count(customer)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}
