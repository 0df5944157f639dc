package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xinna-pharma/internal/config"
	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/provider"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

type routerFixture struct {
	engine    *gin.Engine
	container *provider.Container
	db        *gorm.DB
}

func setupRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "debug"},
		JWT:     config.JWTConfig{SecretKey: "staff-secret", ExpireHours: 1},
		UserJWT: config.JWTConfig{SecretKey: "customer-secret", ExpireHours: 1},
		Hashid:  config.HashidConfig{Salt: "router-test-salt", MinLength: 8},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	container := provider.NewContainer(cfg)
	return &routerFixture{
		engine:    SetupRouter(cfg, container),
		container: container,
		db:        db,
	}
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) envelope {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en-US")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s http status want 200 got %d", method, path, w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s decode failed: %v body=%s", method, path, err, w.Body.String())
	}
	return env
}

func (f *routerFixture) mustOK(t *testing.T, method, path, token string, body interface{}, out interface{}) {
	t.Helper()
	env := f.do(t, method, path, token, body)
	if env.StatusCode != 0 {
		t.Fatalf("%s %s status_code want 0 got %d (%s)", method, path, env.StatusCode, env.Msg)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("%s %s decode data failed: %v", method, path, err)
		}
	}
}

func (f *routerFixture) seedStaff(t *testing.T, username, role string) {
	t.Helper()
	hash, err := service.HashPassword("Passw0rd!")
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	staff := models.Staff{
		Username:     username,
		Name:         username,
		PasswordHash: hash,
		Role:         role,
		Status:       constants.AccountStatusActive,
	}
	if err := f.db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
}

func (f *routerFixture) staffToken(t *testing.T, username string) string {
	t.Helper()
	var out struct {
		Token string `json:"token"`
	}
	f.mustOK(t, http.MethodPost, "/api/v1/admin/login", "", gin.H{"username": username, "password": "Passw0rd!"}, &out)
	return out.Token
}

func TestCheckoutAndShipmentOverHTTP(t *testing.T) {
	f := setupRouterFixture(t)
	codec := f.container.Codec

	category := models.Category{Name: "Analgesic"}
	if err := f.db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{CategoryID: category.ID, Name: "Paracetamol 500mg", PriceAmount: models.NewMoneyFromInt(5000), Stock: 3}
	if err := f.db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	payment := models.PaymentMethod{Name: "Bank Transfer", IsActive: true}
	shipping := models.ShippingMethod{Name: "Courier", Cost: models.NewMoneyFromInt(2000), IsActive: true}
	if err := f.db.Create(&payment).Error; err != nil {
		t.Fatalf("create payment method failed: %v", err)
	}
	if err := f.db.Create(&shipping).Error; err != nil {
		t.Fatalf("create shipping method failed: %v", err)
	}
	f.seedStaff(t, "cashier1", constants.StaffRoleCashier)

	var registered struct {
		Token string `json:"token"`
	}
	f.mustOK(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Siti",
		"email":    "siti@example.com",
		"password": "Passw0rd1",
	}, &registered)
	customerToken := registered.Token

	// 公开目录使用混淆 ID
	var products []struct {
		ID    string `json:"id"`
		Stock int    `json:"stock"`
	}
	f.mustOK(t, http.MethodGet, "/api/v1/public/products", "", nil, &products)
	if len(products) != 1 || products[0].ID != codec.Encode(product.ID) {
		t.Fatalf("unexpected product listing: %+v", products)
	}

	f.mustOK(t, http.MethodPost, "/api/v1/cart/items", customerToken, gin.H{"product_id": products[0].ID, "quantity": 2}, nil)
	if env := f.do(t, http.MethodPost, "/api/v1/cart/items", customerToken, gin.H{"product_id": products[0].ID, "quantity": 2}); env.StatusCode != 400 {
		t.Fatalf("merge beyond stock want 400 got %d", env.StatusCode)
	}
	if env := f.do(t, http.MethodPost, "/api/v1/cart/items", customerToken, gin.H{"product_id": products[0].ID, "quantity": math.MaxInt}); env.StatusCode != 400 {
		t.Fatalf("oversized quantity want 400 got %d", env.StatusCode)
	}
	var count struct {
		Count int64 `json:"count"`
	}
	f.mustOK(t, http.MethodGet, "/api/v1/cart/count", customerToken, nil, &count)
	if count.Count != 1 {
		t.Fatalf("cart count want 1 got %d", count.Count)
	}

	var placed struct {
		OrderID string `json:"order_id"`
		Order   struct {
			TotalAmount string `json:"total_amount"`
			Status      string `json:"status"`
		} `json:"order"`
	}
	f.mustOK(t, http.MethodPost, "/api/v1/checkout", customerToken, gin.H{
		"payment_method_id":  codec.Encode(payment.ID),
		"shipping_method_id": codec.Encode(shipping.ID),
		"shipping_cost":      "2000",
		"platform_fee":       0,
		"recipient_name":     "Siti",
		"shipping_address":   "Jl. Merdeka 10",
	}, &placed)
	if placed.Order.TotalAmount != "12000.00" || placed.Order.Status != constants.OrderStatusAwaitingConfirmation {
		t.Fatalf("unexpected order: %+v", placed.Order)
	}
	if env := f.do(t, http.MethodPost, "/api/v1/checkout", customerToken, gin.H{
		"payment_method_id":  codec.Encode(payment.ID),
		"shipping_method_id": codec.Encode(shipping.ID),
		"recipient_name":     "Siti",
		"shipping_address":   "Jl. Merdeka 10",
	}); env.StatusCode != 400 || env.Msg != "Your cart is empty" {
		t.Fatalf("second checkout want empty cart error, got %d %q", env.StatusCode, env.Msg)
	}

	staffToken := f.staffToken(t, "cashier1")
	var pending []struct {
		ID string `json:"id"`
	}
	f.mustOK(t, http.MethodGet, "/api/v1/admin/orders/pending", staffToken, nil, &pending)
	if len(pending) != 1 || pending[0].ID != placed.OrderID {
		t.Fatalf("unexpected pending orders: %+v", pending)
	}

	f.mustOK(t, http.MethodPost, "/api/v1/admin/shipments", staffToken, gin.H{"order_id": placed.OrderID, "note": "JNE 123"}, nil)
	if env := f.do(t, http.MethodPost, "/api/v1/admin/shipments", staffToken, gin.H{"order_id": placed.OrderID}); env.StatusCode != 409 {
		t.Fatalf("second shipment want 409 got %d", env.StatusCode)
	}

	var detail struct {
		Status string `json:"status"`
	}
	f.mustOK(t, http.MethodGet, "/api/v1/orders/"+placed.OrderID, customerToken, nil, &detail)
	if detail.Status != constants.OrderStatusAwaitingCourier {
		t.Fatalf("order status want %s got %s", constants.OrderStatusAwaitingCourier, detail.Status)
	}
}

func TestRouterAccessControl(t *testing.T) {
	f := setupRouterFixture(t)
	f.seedStaff(t, "cashier2", constants.StaffRoleCashier)
	cashierToken := f.staffToken(t, "cashier2")

	var me struct {
		Staff struct {
			Role string `json:"role"`
		} `json:"staff"`
		Permissions []struct {
			Object string `json:"object"`
			Action string `json:"action"`
		} `json:"permissions"`
	}
	f.mustOK(t, http.MethodGet, "/api/v1/admin/me", cashierToken, nil, &me)
	if me.Staff.Role != constants.StaffRoleCashier || len(me.Permissions) != 9 {
		t.Fatalf("unexpected profile: %+v", me)
	}

	// 收银员无采购删除权限
	if env := f.do(t, http.MethodDelete, "/api/v1/admin/purchases/abcdefgh", cashierToken, nil); env.StatusCode != 403 {
		t.Fatalf("cashier delete purchase want 403 got %d", env.StatusCode)
	}
	// 员工令牌不能访问顾客接口
	if env := f.do(t, http.MethodGet, "/api/v1/cart", cashierToken, nil); env.StatusCode != 401 {
		t.Fatalf("staff token on customer route want 401 got %d", env.StatusCode)
	}
	// 无法解码的混淆 ID 视为不存在
	if env := f.do(t, http.MethodGet, "/api/v1/public/products/not-a-token", "", nil); env.StatusCode != 404 {
		t.Fatalf("unknown token want 404 got %d", env.StatusCode)
	}
}

func TestMetricsAndHealthEndpoints(t *testing.T) {
	f := setupRouterFixture(t)

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health response: %d %s", w.Code, w.Body.String())
	}

	f.container.ShopMetrics.ObserveCheckout(constants.CheckoutResultSuccess, 10*time.Millisecond)
	w = httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "xinna_checkout_total") {
		t.Fatalf("metrics endpoint should expose checkout counter, got %d", w.Code)
	}
}
