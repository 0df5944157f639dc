package shared

import (
	"time"

	"github.com/xinna-pharma/internal/hashid"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/service"
)

// 对外视图：所有主键均以混淆 ID 输出，不暴露自增序号

// CategoryView 分类视图
type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductView 药品视图
type ProductView struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Price       models.Money       `json:"price"`
	Stock       int                `json:"stock"`
	Description string             `json:"description"`
	Images      models.StringArray `json:"images"`
	Category    *CategoryView      `json:"category,omitempty"`
	CategoryID  string             `json:"category_id"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CartItemView 购物车行视图
type CartItemView struct {
	ID        string       `json:"id"`
	ProductID string       `json:"product_id"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	Subtotal  models.Money `json:"subtotal"`
	Product   *ProductView `json:"product,omitempty"`
}

// OrderItemView 订单行视图
type OrderItemView struct {
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	UnitPrice   models.Money `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	Subtotal    models.Money `json:"subtotal"`
}

// ShipmentView 发货记录视图
type ShipmentView struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	OrderNo   string    `json:"order_no,omitempty"`
	ShippedAt time.Time `json:"shipped_at"`
	Note      string    `json:"note"`
	StaffName string    `json:"staff_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderView 订单视图
type OrderView struct {
	ID               string          `json:"id"`
	OrderNo          string          `json:"order_no"`
	Status           string          `json:"status"`
	ItemsAmount      models.Money    `json:"items_amount"`
	ShippingCost     models.Money    `json:"shipping_cost"`
	PlatformFee      models.Money    `json:"platform_fee"`
	TotalAmount      models.Money    `json:"total_amount"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	ShippingMethod   string          `json:"shipping_method,omitempty"`
	RecipientName    string          `json:"recipient_name"`
	RecipientPhone   string          `json:"recipient_phone"`
	ShippingAddress  string          `json:"shipping_address"`
	ShippingCity     string          `json:"shipping_city"`
	ShippingPostcode string          `json:"shipping_postcode"`
	CustomerName     string          `json:"customer_name,omitempty"`
	Items            []OrderItemView `json:"items"`
	Shipment         *ShipmentView   `json:"shipment,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// DistributorView 供应商视图
type DistributorView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PurchaseItemView 采购行视图
type PurchaseItemView struct {
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name,omitempty"`
	Quantity    int          `json:"quantity"`
	UnitCost    models.Money `json:"unit_cost"`
	Subtotal    models.Money `json:"subtotal"`
}

// PurchaseView 采购单视图
type PurchaseView struct {
	ID           string             `json:"id"`
	InvoiceNo    string             `json:"invoice_no"`
	PurchaseDate time.Time          `json:"purchase_date"`
	TotalAmount  models.Money       `json:"total_amount"`
	Distributor  *DistributorView   `json:"distributor,omitempty"`
	Items        []PurchaseItemView `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
}

// MethodView 支付/配送方式视图
type MethodView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Cost        *models.Money `json:"cost,omitempty"`
}

// CustomerView 顾客资料视图
type CustomerView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// StaffView 员工资料视图
type StaffView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// NewCategoryView 构建分类视图
func NewCategoryView(codec *hashid.Codec, category *models.Category) *CategoryView {
	if category == nil {
		return nil
	}
	return &CategoryView{ID: codec.Encode(category.ID), Name: category.Name}
}

// NewProductView 构建药品视图
func NewProductView(codec *hashid.Codec, product *models.Product) *ProductView {
	if product == nil {
		return nil
	}
	images := product.Images
	if images == nil {
		images = models.StringArray{}
	}
	return &ProductView{
		ID:          codec.Encode(product.ID),
		Name:        product.Name,
		Price:       product.PriceAmount,
		Stock:       product.Stock,
		Description: product.Description,
		Images:      images,
		Category:    NewCategoryView(codec, product.Category),
		CategoryID:  codec.Encode(product.CategoryID),
		UpdatedAt:   product.UpdatedAt,
	}
}

// NewProductViews 批量构建药品视图
func NewProductViews(codec *hashid.Codec, products []models.Product) []ProductView {
	result := make([]ProductView, 0, len(products))
	for i := range products {
		result = append(result, *NewProductView(codec, &products[i]))
	}
	return result
}

// NewCartItemView 构建购物车行视图
func NewCartItemView(codec *hashid.Codec, item *models.CartItem) *CartItemView {
	if item == nil {
		return nil
	}
	return &CartItemView{
		ID:        codec.Encode(item.ID),
		ProductID: codec.Encode(item.ProductID),
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal,
		Product:   NewProductView(codec, item.Product),
	}
}

// NewCartSummaryView 构建购物车列表视图
func NewCartSummaryView(codec *hashid.Codec, summary *service.CartSummary) map[string]interface{} {
	items := make([]CartItemView, 0, len(summary.Items))
	for i := range summary.Items {
		items = append(items, *NewCartItemView(codec, &summary.Items[i]))
	}
	return map[string]interface{}{
		"items":        items,
		"items_amount": summary.ItemsAmount,
	}
}

// NewShipmentView 构建发货记录视图
func NewShipmentView(codec *hashid.Codec, shipment *models.Shipment) *ShipmentView {
	if shipment == nil {
		return nil
	}
	view := &ShipmentView{
		ID:        codec.Encode(shipment.ID),
		OrderID:   codec.Encode(shipment.OrderID),
		ShippedAt: shipment.ShippedAt,
		Note:      shipment.Note,
		CreatedAt: shipment.CreatedAt,
	}
	if shipment.Order != nil {
		view.OrderNo = shipment.Order.OrderNo
	}
	if shipment.Staff != nil {
		view.StaffName = shipment.Staff.Name
	}
	return view
}

// NewOrderView 构建订单视图
func NewOrderView(codec *hashid.Codec, order *models.Order) *OrderView {
	if order == nil {
		return nil
	}
	view := &OrderView{
		ID:               codec.Encode(order.ID),
		OrderNo:          order.OrderNo,
		Status:           order.Status,
		ItemsAmount:      order.ItemsAmount,
		ShippingCost:     order.ShippingCost,
		PlatformFee:      order.PlatformFee,
		TotalAmount:      order.TotalAmount,
		RecipientName:    order.RecipientName,
		RecipientPhone:   order.RecipientPhone,
		ShippingAddress:  order.ShippingAddress,
		ShippingCity:     order.ShippingCity,
		ShippingPostcode: order.ShippingPostcode,
		Items:            make([]OrderItemView, 0, len(order.Items)),
		Shipment:         NewShipmentView(codec, order.Shipment),
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	if order.PaymentMethod != nil {
		view.PaymentMethod = order.PaymentMethod.Name
	}
	if order.ShippingMethod != nil {
		view.ShippingMethod = order.ShippingMethod.Name
	}
	if order.Customer != nil {
		view.CustomerName = order.Customer.Name
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, OrderItemView{
			ProductID:   codec.Encode(item.ProductID),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}
	return view
}

// NewOrderViews 批量构建订单视图
func NewOrderViews(codec *hashid.Codec, orders []models.Order) []OrderView {
	result := make([]OrderView, 0, len(orders))
	for i := range orders {
		result = append(result, *NewOrderView(codec, &orders[i]))
	}
	return result
}

// NewDistributorView 构建供应商视图
func NewDistributorView(codec *hashid.Codec, distributor *models.Distributor) *DistributorView {
	if distributor == nil {
		return nil
	}
	return &DistributorView{
		ID:      codec.Encode(distributor.ID),
		Name:    distributor.Name,
		Phone:   distributor.Phone,
		Address: distributor.Address,
	}
}

// NewPurchaseView 构建采购单视图
func NewPurchaseView(codec *hashid.Codec, purchase *models.Purchase) *PurchaseView {
	if purchase == nil {
		return nil
	}
	view := &PurchaseView{
		ID:           codec.Encode(purchase.ID),
		InvoiceNo:    purchase.InvoiceNo,
		PurchaseDate: purchase.PurchaseDate,
		TotalAmount:  purchase.TotalAmount,
		Distributor:  NewDistributorView(codec, purchase.Distributor),
		Items:        make([]PurchaseItemView, 0, len(purchase.Items)),
		CreatedAt:    purchase.CreatedAt,
	}
	for _, item := range purchase.Items {
		line := PurchaseItemView{
			ProductID: codec.Encode(item.ProductID),
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Subtotal:  item.Subtotal,
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
		}
		view.Items = append(view.Items, line)
	}
	return view
}

// NewCustomerView 构建顾客资料视图
func NewCustomerView(codec *hashid.Codec, customer *models.Customer) *CustomerView {
	if customer == nil {
		return nil
	}
	return &CustomerView{
		ID:       codec.Encode(customer.ID),
		Name:     customer.Name,
		Email:    customer.Email,
		Phone:    customer.Phone,
		Address:  customer.Address,
		City:     customer.City,
		Postcode: customer.Postcode,
	}
}

// NewStaffView 构建员工资料视图
func NewStaffView(codec *hashid.Codec, staff *models.Staff) *StaffView {
	if staff == nil {
		return nil
	}
	return &StaffView{
		ID:       codec.Encode(staff.ID),
		Username: staff.Username,
		Name:     staff.Name,
		Role:     staff.Role,
	}
}
