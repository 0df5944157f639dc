package shared

import (
	"errors"

	"github.com/xinna-pharma/internal/http/response"
	"github.com/xinna-pharma/internal/i18n"
	"github.com/xinna-pharma/internal/service"

	"github.com/gin-gonic/gin"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// localizedError 自带文案键与参数的错误（如密码策略）
type localizedError interface {
	error
	Key() string
	Args() []interface{}
}

var serviceErrorRules = []MappedError{
	{Target: service.ErrUnauthorized, Code: response.CodeUnauthorized, Key: "error.unauthorized"},
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrAccountDisabled, Code: response.CodeForbidden, Key: "error.account_disabled"},

	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Key: "error.category_not_found"},
	{Target: service.ErrCartItemNotFound, Code: response.CodeNotFound, Key: "error.cart_item_not_found"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrPurchaseNotFound, Code: response.CodeNotFound, Key: "error.purchase_not_found"},
	{Target: service.ErrCustomerNotFound, Code: response.CodeNotFound, Key: "error.customer_not_found"},
	{Target: service.ErrDistributorNotFound, Code: response.CodeNotFound, Key: "error.distributor_not_found"},
	{Target: service.ErrPaymentMethodNotFound, Code: response.CodeNotFound, Key: "error.payment_method_not_found"},
	{Target: service.ErrShippingMethodNotFound, Code: response.CodeNotFound, Key: "error.shipping_method_not_found"},

	{Target: service.ErrInsufficientStockTotal, Code: response.CodeBadRequest, Key: "error.insufficient_stock_total"},
	{Target: service.ErrInsufficientStock, Code: response.CodeBadRequest, Key: "error.insufficient_stock"},
	{Target: service.ErrCartEmpty, Code: response.CodeBadRequest, Key: "error.cart_empty"},

	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Key: "error.invalid_quantity"},
	{Target: service.ErrInvalidAmount, Code: response.CodeBadRequest, Key: "error.invalid_amount"},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrTooManyImages, Code: response.CodeBadRequest, Key: "error.too_many_images"},
	{Target: service.ErrPurchaseLinesEmpty, Code: response.CodeBadRequest, Key: "error.purchase_lines_empty"},
	{Target: service.ErrInvalidOrderStatus, Code: response.CodeBadRequest, Key: "error.invalid_order_status"},
	{Target: service.ErrOrderStatusTransition, Code: response.CodeBadRequest, Key: "error.order_status_transition"},
	{Target: service.ErrOrderNotCancelable, Code: response.CodeBadRequest, Key: "error.order_not_cancelable"},

	{Target: service.ErrEmailExists, Code: response.CodeConflict, Key: "error.email_exists"},
	{Target: service.ErrShipmentExists, Code: response.CodeConflict, Key: "error.shipment_exists"},
	{Target: service.ErrPurchaseInvoiceExists, Code: response.CodeConflict, Key: "error.purchase_invoice_exists"},
	{Target: service.ErrDistributorExists, Code: response.CodeConflict, Key: "error.distributor_exists"},
}

// RespondServiceError 将服务层错误映射为业务码与国际化文案；未识别的错误按系统错误处理并记录日志。
func RespondServiceError(c *gin.Context, err error) {
	var shortage *service.StockShortageError
	if errors.As(err, &shortage) {
		locale := i18n.ResolveLocale(c)
		msg := i18n.Sprintf(locale, "error.insufficient_stock_named", shortage.ProductName, shortage.Available)
		RespondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	var keyed localizedError
	if errors.As(err, &keyed) {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), keyed.Key(), keyed.Args()...)
		RespondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	for _, rule := range serviceErrorRules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, response.CodeInternal, "error.internal_error", err)
}
