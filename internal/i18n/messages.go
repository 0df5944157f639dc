package i18n

var messages = map[string]map[string]string{
	LocaleID: {
		"error.rate_limit_unavailable":    "Layanan pembatas permintaan tidak tersedia",
		"error.auth_header_missing":       "Header Authorization tidak ada",
		"error.auth_header_invalid":       "Format header Authorization tidak valid",
		"error.token_invalid":             "Token tidak valid atau kedaluwarsa",
		"error.token_revoked":             "Token sudah dicabut, silakan masuk kembali",
		"error.jwt_secret_missing":        "Kunci JWT belum dikonfigurasi",
		"error.bad_request":               "Permintaan tidak valid",
		"error.unauthorized":              "Silakan masuk terlebih dahulu",
		"error.forbidden":                 "Anda tidak memiliki akses",
		"error.not_found":                 "Data tidak ditemukan",
		"error.internal_error":            "Terjadi kesalahan sistem",
		"error.too_many_requests":         "Terlalu banyak permintaan, coba lagi nanti",
		"error.login_too_many":            "Terlalu banyak percobaan masuk, coba lagi dalam %d detik",
		"error.invalid_id":                "ID tidak valid",
		"error.invalid_credentials":       "Email/nama pengguna atau kata sandi salah",
		"error.account_disabled":          "Akun dinonaktifkan",
		"error.email_exists":              "Email sudah terdaftar",
		"error.password_min_length":       "Kata sandi minimal %d karakter",
		"error.password_require_upper":    "Kata sandi harus mengandung huruf besar",
		"error.password_require_lower":    "Kata sandi harus mengandung huruf kecil",
		"error.password_require_number":   "Kata sandi harus mengandung angka",
		"error.password_contains_email":   "Kata sandi tidak boleh memuat nama email",
		"error.product_not_found":         "Obat tidak ditemukan",
		"error.category_not_found":        "Kategori tidak ditemukan",
		"error.cart_item_not_found":       "Item keranjang tidak ditemukan",
		"error.order_not_found":           "Pesanan tidak ditemukan",
		"error.purchase_not_found":        "Pembelian tidak ditemukan",
		"error.customer_not_found":        "Pelanggan tidak ditemukan",
		"error.distributor_not_found":     "Distributor tidak ditemukan",
		"error.payment_method_not_found":  "Metode pembayaran tidak ditemukan",
		"error.shipping_method_not_found": "Metode pengiriman tidak ditemukan",
		"error.insufficient_stock":        "Stok tidak mencukupi",
		"error.insufficient_stock_named":  "Stok %s tidak mencukupi (tersisa %d)",
		"error.insufficient_stock_total":  "Jumlah di keranjang melebihi stok yang tersedia",
		"error.cart_empty":                "Keranjang masih kosong",
		"error.invalid_quantity":          "Jumlah tidak valid",
		"error.invalid_amount":            "Nominal tidak valid",
		"error.too_many_images":           "Maksimal 3 gambar per obat",
		"error.purchase_lines_empty":      "Pembelian harus memiliki minimal satu baris",
		"error.invalid_order_status":      "Status pesanan tidak valid",
		"error.order_status_transition":   "Perubahan status pesanan tidak diizinkan",
		"error.order_not_cancelable":      "Pesanan tidak dapat dibatalkan lagi",
		"error.shipment_exists":           "Pesanan sudah memiliki catatan pengiriman",
		"error.purchase_invoice_exists":   "Nomor faktur sudah tercatat untuk distributor ini",
		"error.distributor_exists":        "Distributor sudah ada",
	},
	LocaleEN: {
		"error.rate_limit_unavailable":    "Rate limiter unavailable",
		"error.auth_header_missing":       "Missing Authorization header",
		"error.auth_header_invalid":       "Malformed Authorization header",
		"error.token_invalid":             "Token invalid or expired",
		"error.token_revoked":             "Token revoked, please sign in again",
		"error.jwt_secret_missing":        "JWT secret not configured",
		"error.bad_request":               "Invalid request",
		"error.unauthorized":              "Please sign in first",
		"error.forbidden":                 "You do not have access",
		"error.not_found":                 "Not found",
		"error.internal_error":            "Internal server error",
		"error.too_many_requests":         "Too many requests, please retry later",
		"error.login_too_many":            "Too many login attempts, retry in %d seconds",
		"error.invalid_id":                "Invalid id",
		"error.invalid_credentials":       "Incorrect email/username or password",
		"error.account_disabled":          "Account disabled",
		"error.email_exists":              "Email already registered",
		"error.password_min_length":       "Password must be at least %d characters",
		"error.password_require_upper":    "Password must contain an uppercase letter",
		"error.password_require_lower":    "Password must contain a lowercase letter",
		"error.password_require_number":   "Password must contain a number",
		"error.password_contains_email":   "Password must not contain your email name",
		"error.product_not_found":         "Medicine not found",
		"error.category_not_found":        "Category not found",
		"error.cart_item_not_found":       "Cart item not found",
		"error.order_not_found":           "Order not found",
		"error.purchase_not_found":        "Purchase not found",
		"error.customer_not_found":        "Customer not found",
		"error.distributor_not_found":     "Distributor not found",
		"error.payment_method_not_found":  "Payment method not found",
		"error.shipping_method_not_found": "Shipping method not found",
		"error.insufficient_stock":        "Insufficient stock",
		"error.insufficient_stock_named":  "Insufficient stock for %s (%d left)",
		"error.insufficient_stock_total":  "Cart quantity would exceed available stock",
		"error.cart_empty":                "Your cart is empty",
		"error.invalid_quantity":          "Invalid quantity",
		"error.invalid_amount":            "Invalid amount",
		"error.too_many_images":           "At most 3 images per medicine",
		"error.purchase_lines_empty":      "A purchase needs at least one line",
		"error.invalid_order_status":      "Invalid order status",
		"error.order_status_transition":   "Order status change not allowed",
		"error.order_not_cancelable":      "Order can no longer be cancelled",
		"error.shipment_exists":           "Order already has a shipment record",
		"error.purchase_invoice_exists":   "Invoice already recorded for this distributor",
		"error.distributor_exists":        "Distributor already exists",
	},
	LocaleZH: {
		"error.rate_limit_unavailable":    "限流服务不可用",
		"error.auth_header_missing":       "缺少 Authorization 请求头",
		"error.auth_header_invalid":       "Authorization 请求头格式错误",
		"error.token_invalid":             "令牌无效或已过期",
		"error.token_revoked":             "令牌已失效，请重新登录",
		"error.jwt_secret_missing":        "未配置 JWT 密钥",
		"error.bad_request":               "请求参数错误",
		"error.unauthorized":              "请先登录",
		"error.forbidden":                 "无权访问",
		"error.not_found":                 "资源不存在",
		"error.internal_error":            "系统错误",
		"error.too_many_requests":         "请求过于频繁，请稍后再试",
		"error.login_too_many":            "登录尝试过多，请 %d 秒后再试",
		"error.invalid_id":                "ID 无效",
		"error.invalid_credentials":       "账号或密码错误",
		"error.account_disabled":          "账号已停用",
		"error.email_exists":              "邮箱已注册",
		"error.password_min_length":       "密码至少 %d 位",
		"error.password_require_upper":    "密码需包含大写字母",
		"error.password_require_lower":    "密码需包含小写字母",
		"error.password_require_number":   "密码需包含数字",
		"error.password_contains_email":   "密码不能包含邮箱用户名",
		"error.product_not_found":         "药品不存在",
		"error.category_not_found":        "分类不存在",
		"error.cart_item_not_found":       "购物车项不存在",
		"error.order_not_found":           "订单不存在",
		"error.purchase_not_found":        "采购单不存在",
		"error.customer_not_found":        "顾客不存在",
		"error.distributor_not_found":     "供应商不存在",
		"error.payment_method_not_found":  "支付方式不存在",
		"error.shipping_method_not_found": "配送方式不存在",
		"error.insufficient_stock":        "库存不足",
		"error.insufficient_stock_named":  "%s 库存不足（剩余 %d）",
		"error.insufficient_stock_total":  "购物车合计数量超过库存",
		"error.cart_empty":                "购物车为空",
		"error.invalid_quantity":          "数量无效",
		"error.invalid_amount":            "金额无效",
		"error.too_many_images":           "每个药品最多 3 张图片",
		"error.purchase_lines_empty":      "采购单至少需要一行",
		"error.invalid_order_status":      "订单状态无效",
		"error.order_status_transition":   "不允许的订单状态变更",
		"error.order_not_cancelable":      "订单已无法取消",
		"error.shipment_exists":           "订单已登记发货",
		"error.purchase_invoice_exists":   "该供应商的发票号已登记",
		"error.distributor_exists":        "供应商已存在",
	},
}
