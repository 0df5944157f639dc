package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xinna-pharma/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int) *models.Product {
	t.Helper()
	category := models.Category{Name: "cat-" + name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		CategoryID:  category.ID,
		Name:        name,
		PriceAmount: models.NewMoneyFromInt(price),
		Stock:       stock,
		Images:      models.StringArray{"a.png"},
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func reloadStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	return product.Stock
}

func TestDecrementStockNeverGoesNegative(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	product := createTestProduct(t, db, "Paracetamol", 5000, 3)

	affected, err := repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row affected, got %d", affected)
	}

	affected, err = repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected no row affected when stock short, got %d", affected)
	}
	if stock := reloadStock(t, db, product.ID); stock != 1 {
		t.Fatalf("stock want 1, got %d", stock)
	}
}

func TestIncrementStockMissingProduct(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)

	affected, err := repo.IncrementStock(999, 5)
	if err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows for missing product, got %d", affected)
	}

	if _, err := repo.IncrementStock(1, 0); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
}

func TestProductListFilters(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewProductRepository(db)
	createTestProduct(t, db, "Amoxicillin", 12000, 10)
	createTestProduct(t, db, "Vitamin C", 3000, 0)
	createTestProduct(t, db, "Antasida", 4000, 2)

	items, total, err := repo.List(ProductListFilter{InStockOnly: true, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("in-stock filter want 2, got total=%d len=%d", total, len(items))
	}

	items, total, err = repo.List(ProductListFilter{Search: "vitamin", WithCategory: true})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || items[0].Name != "Vitamin C" || items[0].Category == nil {
		t.Fatalf("unexpected search result: total=%d items=%+v", total, items)
	}

	low, err := repo.ListLowStock(2, 0)
	if err != nil {
		t.Fatalf("low stock failed: %v", err)
	}
	if len(low) != 2 || low[0].Name != "Vitamin C" {
		t.Fatalf("unexpected low stock list: %+v", low)
	}
}
