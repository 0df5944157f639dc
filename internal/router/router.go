package router

import (
	"fmt"
	"strings"

	"github.com/xinna-pharma/internal/cache"
	"github.com/xinna-pharma/internal/config"
	adminhandlers "github.com/xinna-pharma/internal/http/handlers/admin"
	publichandlers "github.com/xinna-pharma/internal/http/handlers/public"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", cache.Prefix()),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	staffLoginRule := loginRule
	staffLoginRule.Prefix = fmt.Sprintf("%s:rate:staff_login", cache.Prefix())

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/payment-methods", publicHandler.ListPaymentMethods)
			public.GET("/shipping-methods", publicHandler.ListShippingMethods)
		}

		// 顾客认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 顾客接口（需鉴权）
		customer := apiV1.Group("")
		customer.Use(CustomerJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.CustomerRepo))
		{
			customer.GET("/me", publicHandler.GetProfile)
			customer.PUT("/me", publicHandler.UpdateProfile)
			customer.GET("/cart", publicHandler.GetCart)
			customer.GET("/cart/count", publicHandler.CartCount)
			customer.POST("/cart/items", publicHandler.AddCartItem)
			customer.PATCH("/cart/items/:id", publicHandler.UpdateCartItem)
			customer.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)
			customer.POST("/checkout", publicHandler.Checkout)
			customer.GET("/orders", publicHandler.ListOrders)
			customer.GET("/orders/:id", publicHandler.GetOrder)
			customer.POST("/orders/:id/cancel", publicHandler.CancelOrder)
		}

		// 员工接口
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, staffLoginRule, KeyByIPAndJSONField("username")), adminHandler.Login)

			authorized := admin.Group("")
			authorized.Use(StaffJWTAuthMiddleware(cfg.JWT.SecretKey, c.StaffRepo))
			authorized.Use(StaffRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/me", adminHandler.Me)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.GET("/products/low-stock", adminHandler.LowStockProducts)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/distributors", adminHandler.ListDistributors)
				authorized.POST("/distributors", adminHandler.CreateDistributor)

				authorized.GET("/purchases", adminHandler.ListPurchases)
				authorized.POST("/purchases", adminHandler.CreatePurchase)
				authorized.GET("/purchases/:id", adminHandler.GetPurchase)
				authorized.DELETE("/purchases/:id", adminHandler.DeletePurchase)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/pending", adminHandler.ListPendingOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

				authorized.GET("/shipments", adminHandler.ListShipments)
				authorized.POST("/shipments", adminHandler.CreateShipment)
			}
		}
	}

	// 指标
	if cfg.Metrics.Enabled && c.MetricsRegistry != nil {
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.HandlerFor(c.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	// 健康检查
	r.GET("/health", func(ctx *gin.Context) {
		redisStatus := "disabled"
		if cache.Enabled() {
			redisStatus = "ok"
			if err := cache.Ping(ctx.Request.Context()); err != nil {
				redisStatus = "error"
			}
		}
		ctx.JSON(200, gin.H{"status": "ok", "redis": redisStatus})
	})

	return r
}
