package provider

import (
	"github.com/xinna-pharma/internal/authz"
	"github.com/xinna-pharma/internal/cache"
	"github.com/xinna-pharma/internal/config"
	"github.com/xinna-pharma/internal/hashid"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/metrics"
	"github.com/xinna-pharma/internal/models"
	"github.com/xinna-pharma/internal/queue"
	"github.com/xinna-pharma/internal/repository"
	"github.com/xinna-pharma/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config          *config.Config
	Codec           *hashid.Codec
	QueueClient     *queue.Client
	MetricsRegistry *prometheus.Registry
	ShopMetrics     *metrics.ShopMetrics

	// Repositories
	StaffRepo       repository.StaffRepository
	CustomerRepo    repository.CustomerRepository
	ProductRepo     repository.ProductRepository
	CategoryRepo    repository.CategoryRepository
	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository
	PurchaseRepo    repository.PurchaseRepository
	ShipmentRepo    repository.ShipmentRepository
	DistributorRepo repository.DistributorRepository
	MethodRepo      repository.MethodRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	CatalogService   *service.CatalogService
	CartService      *service.CartService
	CheckoutService  *service.CheckoutService
	OrderService     *service.OrderService
	PurchaseService  *service.PurchaseService
	ShipmentService  *service.ShipmentService
	InventoryService *service.InventoryService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端；未启用时返回空实现，入队为 no-op
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	codec, err := hashid.New(cfg.Hashid.Salt, cfg.Hashid.MinLength)
	if err != nil {
		logger.Errorw("provider_init_hashid_failed", "error", err)
		panic(err)
	}

	c := &Container{
		Config:      cfg,
		Codec:       codec,
		QueueClient: queueClient,
	}
	c.initMetrics()

	// 1. 初始化 Repositories
	c.initRepositories(models.DB)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initMetrics() {
	if !c.Config.Metrics.Enabled {
		c.ShopMetrics = metrics.NewShopMetrics(nil)
		return
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.MetricsRegistry = registry
	c.ShopMetrics = metrics.NewShopMetrics(registry)
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.StaffRepo = repository.NewStaffRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PurchaseRepo = repository.NewPurchaseRepository(db)
	c.ShipmentRepo = repository.NewShipmentRepository(db)
	c.DistributorRepo = repository.NewDistributorRepository(db)
	c.MethodRepo = repository.NewMethodRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.StaffRepo, c.CustomerRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo, c.MethodRepo, c.DistributorRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(
		c.CartRepo,
		c.ProductRepo,
		c.OrderRepo,
		c.CustomerRepo,
		c.MethodRepo,
		c.Codec,
		c.QueueClient,
		c.ShopMetrics,
		c.Config.Checkout.DeriveShippingCost,
	)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.ShopMetrics, c.Config.Order.StrictStatusTransitions)
	c.PurchaseService = service.NewPurchaseService(c.PurchaseRepo, c.ProductRepo, c.DistributorRepo, c.QueueClient, c.ShopMetrics)
	c.ShipmentService = service.NewShipmentService(c.ShipmentRepo, c.OrderRepo)
	c.InventoryService = service.NewInventoryService(
		c.ProductRepo,
		c.Codec,
		c.Config.Inventory.LowStockThreshold,
		c.Config.Inventory.LowStockCacheSeconds,
	)
}
