package repository

import "time"

// ProductListFilter 查询药品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	InStockOnly  bool
	WithCategory bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PurchaseListFilter 查询采购单列表的过滤条件
type PurchaseListFilter struct {
	Page          int
	PageSize      int
	DistributorID uint
	InvoiceNo     string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// ShipmentListFilter 查询发货记录的过滤条件
type ShipmentListFilter struct {
	Page     int
	PageSize int
	StaffID  uint
}
