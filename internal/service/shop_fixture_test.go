package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/hashid"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/queue"
	"github.com/xinna-pharma/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type shopFixture struct {
	db        *gorm.DB
	codec     *hashid.Codec
	cart      *CartService
	checkout  *CheckoutService
	orders    *OrderService
	purchases *PurchaseService
	shipments *ShipmentService
	catalog   *CatalogService
	inventory *InventoryService

	payment  models.PaymentMethod
	shipping models.ShippingMethod
	staff    Principal
}

type shopFixtureOptions struct {
	deriveShippingCost      bool
	strictStatusTransitions bool
}

func setupShopFixture(t *testing.T) *shopFixture {
	return setupShopFixtureWithOptions(t, shopFixtureOptions{})
}

func setupShopFixtureWithOptions(t *testing.T, opts shopFixtureOptions) *shopFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:shop_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	// 单连接使事务串行执行，模拟行锁的互斥效果
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	codec := hashid.MustNew("service-test-salt", 8)
	queueClient, _ := queue.NewClient(nil)

	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	methodRepo := repository.NewMethodRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	distributorRepo := repository.NewDistributorRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	f := &shopFixture{
		db:        db,
		codec:     codec,
		cart:      NewCartService(cartRepo, productRepo),
		checkout:  NewCheckoutService(cartRepo, productRepo, orderRepo, customerRepo, methodRepo, codec, queueClient, nil, opts.deriveShippingCost),
		orders:    NewOrderService(orderRepo, productRepo, nil, opts.strictStatusTransitions),
		purchases: NewPurchaseService(purchaseRepo, productRepo, distributorRepo, queueClient, nil),
		shipments: NewShipmentService(shipmentRepo, orderRepo),
		catalog:   NewCatalogService(productRepo, categoryRepo, methodRepo, distributorRepo),
		inventory: NewInventoryService(productRepo, codec, 5, 60),
	}

	f.payment = models.PaymentMethod{Name: "Bank Transfer", IsActive: true}
	if err := db.Create(&f.payment).Error; err != nil {
		t.Fatalf("create payment method failed: %v", err)
	}
	f.shipping = models.ShippingMethod{Name: "Courier", Cost: models.NewMoneyFromInt(2000), IsActive: true}
	if err := db.Create(&f.shipping).Error; err != nil {
		t.Fatalf("create shipping method failed: %v", err)
	}
	staff := models.Staff{
		Username:     fmt.Sprintf("pharmacist_%d", time.Now().UnixNano()),
		Name:         "Pharmacist",
		PasswordHash: "hash",
		Role:         constants.StaffRolePharmacist,
		Status:       constants.AccountStatusActive,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	f.staff = StaffPrincipal(staff.ID, staff.Role)
	return f
}

func (f *shopFixture) createProduct(t *testing.T, name string, price int64, stock int) *models.Product {
	t.Helper()
	category := models.Category{Name: fmt.Sprintf("category-%s-%d", name, time.Now().UnixNano())}
	if err := f.db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		CategoryID:  category.ID,
		Name:        name,
		PriceAmount: models.NewMoneyFromInt(price),
		Stock:       stock,
	}
	if err := f.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f *shopFixture) createCustomer(t *testing.T, name string) Principal {
	t.Helper()
	customer := models.Customer{
		Name:         name,
		Email:        fmt.Sprintf("%s_%d@example.com", name, time.Now().UnixNano()),
		PasswordHash: "hash",
		Status:       constants.AccountStatusActive,
	}
	if err := f.db.Create(&customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	return CustomerPrincipal(customer.ID)
}

func (f *shopFixture) createDistributor(t *testing.T, name string) *models.Distributor {
	t.Helper()
	distributor := &models.Distributor{Name: name}
	if err := f.db.Create(distributor).Error; err != nil {
		t.Fatalf("create distributor failed: %v", err)
	}
	return distributor
}

func (f *shopFixture) stockOf(t *testing.T, productID uint) int {
	t.Helper()
	var product models.Product
	if err := f.db.First(&product, productID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	return product.Stock
}

func (f *shopFixture) addToCart(t *testing.T, customer Principal, productID uint, quantity int) *models.CartItem {
	t.Helper()
	item, err := f.cart.AddToCart(customer, AddToCartInput{ProductID: productID, Quantity: quantity})
	if err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	return item
}

func (f *shopFixture) placeOrderInput(shippingCost int64) PlaceOrderInput {
	return PlaceOrderInput{
		PaymentMethodID:  f.payment.ID,
		ShippingMethodID: f.shipping.ID,
		ShippingCost:     models.NewMoneyFromInt(shippingCost),
		PlatformFee:      models.NewMoneyFromInt(0),
		RecipientName:    "Siti",
		RecipientPhone:   "08123456789",
		ShippingAddress:  "Jl. Merdeka 10",
		ShippingCity:     "Bandung",
		ShippingPostcode: "40111",
	}
}

func (f *shopFixture) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	return count
}
