package constants

// 订单状态常量
const (
	OrderStatusAwaitingConfirmation = "awaiting_confirmation"
	OrderStatusProcessing           = "processing"
	OrderStatusAwaitingCourier      = "awaiting_courier"
	OrderStatusCompleted            = "completed"
	OrderStatusCancelledByBuyer     = "cancelled_by_buyer"
	OrderStatusCancelledBySeller    = "cancelled_by_seller"
	OrderStatusFlagged              = "flagged"
)

// 主体类型常量
const (
	UserTypeCustomer = "customer"
	UserTypeStaff    = "staff"
)

// 员工角色常量
const (
	StaffRoleOwner      = "owner"
	StaffRoleAdmin      = "admin"
	StaffRolePharmacist = "pharmacist"
	StaffRoleCashier    = "cashier"
)

// 账号状态常量
const (
	AccountStatusActive   = "active"
	AccountStatusDisabled = "disabled"
)

// 库存变动方向
const (
	StockDirectionIn  = "in"
	StockDirectionOut = "out"
)

// 结算结果标签
const (
	CheckoutResultSuccess       = "success"
	CheckoutResultCartEmpty     = "cart_empty"
	CheckoutResultStockShortage = "stock_shortage"
	CheckoutResultError         = "error"
)

// 队列常量
const (
	QueueDefault = "default"
)

// 任务类型常量
const (
	TaskLowStockRefresh = "inventory:low_stock_refresh"
)

// 数量上限；库存上限与 32 位整数列保持一致
const (
	MaxLineQuantity = 100000
	MaxProductStock = 1<<31 - 1
)
