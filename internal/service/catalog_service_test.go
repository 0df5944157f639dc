package service

import (
	"context"
	"testing"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCatalogProductLifecycle(t *testing.T) {
	f := setupShopFixture(t)
	category := models.Category{Name: "Analgesic"}
	require.NoError(t, f.db.Create(&category).Error)

	input := ProductInput{
		CategoryID:   category.ID,
		Name:         "  Naproxen ",
		Price:        models.NewMoneyFromInt(4500),
		Description:  "Tablet 250mg",
		Images:       []string{"a.png", " ", "b.png"},
		InitialStock: 12,
	}
	product, err := f.catalog.CreateProduct(f.staff, input)
	require.NoError(t, err)
	require.Equal(t, "Naproxen", product.Name)
	require.Equal(t, 12, product.Stock)
	require.Equal(t, models.StringArray{"a.png", "b.png"}, product.Images)
	require.Equal(t, "Analgesic", product.CategoryLabel())

	input.Name = "Naproxen Sodium"
	input.InitialStock = 999
	updated, err := f.catalog.UpdateProduct(f.staff, product.ID, input)
	require.NoError(t, err)
	require.Equal(t, "Naproxen Sodium", updated.Name)
	require.Equal(t, 12, updated.Stock, "edits never touch stock")

	products, total, err := f.catalog.ListProducts(ProductListInput{Page: 1, PageSize: 10, Search: "sodium"})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, product.ID, products[0].ID)

	require.NoError(t, f.catalog.DeleteProduct(f.staff, product.ID))
	_, err = f.catalog.GetProduct(product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)
	require.ErrorIs(t, f.catalog.DeleteProduct(f.staff, product.ID), ErrProductNotFound)
}

func TestCatalogProductValidation(t *testing.T) {
	f := setupShopFixture(t)
	category := models.Category{Name: "Herbal"}
	require.NoError(t, f.db.Create(&category).Error)
	base := ProductInput{CategoryID: category.ID, Name: "Ginger", Price: models.NewMoneyFromInt(100)}

	tooMany := base
	tooMany.Images = []string{"1", "2", "3", "4"}
	_, err := f.catalog.CreateProduct(f.staff, tooMany)
	require.ErrorIs(t, err, ErrTooManyImages)

	free := base
	free.Price = models.NewMoneyFromInt(0)
	_, err = f.catalog.CreateProduct(f.staff, free)
	require.ErrorIs(t, err, ErrInvalidAmount)

	orphan := base
	orphan.CategoryID = category.ID + 10
	_, err = f.catalog.CreateProduct(f.staff, orphan)
	require.ErrorIs(t, err, ErrCategoryNotFound)

	hoarded := base
	hoarded.InitialStock = constants.MaxProductStock + 1
	_, err = f.catalog.CreateProduct(f.staff, hoarded)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = f.catalog.CreateProduct(f.createCustomer(t, "shopper"), base)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestCatalogDistributors(t *testing.T) {
	f := setupShopFixture(t)
	created, err := f.catalog.CreateDistributor(f.staff, DistributorInput{Name: "PT Kimia", Phone: "021-555"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = f.catalog.CreateDistributor(f.staff, DistributorInput{Name: "pt kimia"})
	require.ErrorIs(t, err, ErrDistributorExists)

	list, err := f.catalog.ListDistributors(f.staff)
	require.NoError(t, err)
	require.Len(t, list, 1)

	methods, err := f.catalog.ListShippingMethods()
	require.NoError(t, err)
	require.Len(t, methods, 1)
}

func TestLowStockSnapshotFallsBackToDatabase(t *testing.T) {
	f := setupShopFixture(t)
	low := f.createProduct(t, "Eye Drops", 1000, 2)
	f.createProduct(t, "Cough Syrup", 1000, 50)

	_, err := f.inventory.LowStockSnapshot(context.Background(), CustomerPrincipal(1))
	require.ErrorIs(t, err, ErrUnauthorized)

	snapshot, err := f.inventory.LowStockSnapshot(context.Background(), f.staff)
	require.NoError(t, err)
	require.Equal(t, 5, snapshot.Threshold)
	require.Len(t, snapshot.Items, 1)
	require.Equal(t, f.codec.Encode(low.ID), snapshot.Items[0].ProductID)
	require.Equal(t, 2, snapshot.Items[0].Stock)
}
