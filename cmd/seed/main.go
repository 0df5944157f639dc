package main

import (
	"log"
	"os"

	"github.com/xinna-pharma/internal/config"
	"github.com/xinna-pharma/internal/constants"
	"github.com/xinna-pharma/internal/logger"
	"github.com/xinna-pharma/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedProduct struct {
	Category    string
	Name        string
	Price       int64
	Stock       int
	Description string
	Images      []string
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, false); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categoryIDs := seedCategories(stdLog, []string{"Analgesik", "Vitamin & Suplemen", "Obat Batuk & Flu", "Perawatan Luka"})
	seedProducts(stdLog, categoryIDs, []seedProduct{
		{Category: "Analgesik", Name: "Paracetamol 500mg (strip 10)", Price: 5000, Stock: 120, Description: "Pereda nyeri dan penurun demam."},
		{Category: "Analgesik", Name: "Ibuprofen 400mg (strip 10)", Price: 9500, Stock: 60, Description: "Anti-inflamasi nonsteroid."},
		{Category: "Vitamin & Suplemen", Name: "Vitamin C 1000mg (tube 10)", Price: 32000, Stock: 45, Description: "Tablet effervescent rasa jeruk."},
		{Category: "Vitamin & Suplemen", Name: "Zinc 20mg (botol 30)", Price: 41000, Stock: 8, Description: "Suplemen mineral harian."},
		{Category: "Obat Batuk & Flu", Name: "Sirup Obat Batuk 100ml", Price: 18500, Stock: 30, Description: "Untuk batuk berdahak."},
		{Category: "Perawatan Luka", Name: "Plester Luka (isi 20)", Price: 7000, Stock: 3, Description: "Plester steril tahan air."},
	})
	seedDistributors(stdLog, []models.Distributor{
		{Name: "PT Sehat Sentosa", Phone: "021-5550101", Address: "Jl. Gatot Subroto 12, Jakarta"},
		{Name: "CV Farma Nusantara", Phone: "022-7770202", Address: "Jl. Asia Afrika 88, Bandung"},
	})
	seedPaymentMethods(stdLog, []models.PaymentMethod{
		{Name: "Transfer Bank", Description: "BCA / Mandiri / BNI", IsActive: true},
		{Name: "Bayar di Tempat", Description: "Cash on delivery", IsActive: true},
	})
	seedShippingMethods(stdLog, []models.ShippingMethod{
		{Name: "Kurir Reguler", Description: "2-3 hari kerja", Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(10000)), IsActive: true},
		{Name: "Kurir Instan", Description: "Di hari yang sama", Cost: models.NewMoneyFromDecimal(decimal.NewFromInt(25000)), IsActive: true},
	})

	if err := models.InitDefaultOwner(os.Getenv("XP_DEFAULT_OWNER_USERNAME"), os.Getenv("XP_DEFAULT_OWNER_PASSWORD")); err != nil {
		stdLog.Printf("Failed to init owner: %v", err)
	}
	seedStaff(stdLog, "kasir", "Kasir Demo", constants.StaffRoleCashier, "Kasir12345")
	seedStaff(stdLog, "apoteker", "Apoteker Demo", constants.StaffRolePharmacist, "Apoteker12345")
	seedCustomer(stdLog, "Pelanggan Demo", "demo@xinna.local", "demo12345")

	stdLog.Printf("Seed completed")
}

func seedCategories(stdLog *log.Logger, names []string) map[string]uint {
	ids := make(map[string]uint, len(names))
	for _, name := range names {
		category := models.Category{Name: name}
		if err := models.DB.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			stdLog.Printf("Failed to seed category %s: %v", name, err)
			continue
		}
		ids[name] = category.ID
	}
	return ids
}

func seedProducts(stdLog *log.Logger, categoryIDs map[string]uint, items []seedProduct) {
	for _, item := range items {
		categoryID, ok := categoryIDs[item.Category]
		if !ok {
			stdLog.Printf("Skip product %s: category %s missing", item.Name, item.Category)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("name = ?", item.Name).First(&existing).Error; err == nil {
			stdLog.Printf("Product already exists: %s", item.Name)
			continue
		}
		product := models.Product{
			CategoryID:  categoryID,
			Name:        item.Name,
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(item.Price)),
			Stock:       item.Stock,
			Description: item.Description,
			Images:      models.StringArray(item.Images),
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", item.Name)
	}
}

func seedDistributors(stdLog *log.Logger, items []models.Distributor) {
	for _, item := range items {
		distributor := item
		if err := models.DB.Where("name = ?", item.Name).FirstOrCreate(&distributor).Error; err != nil {
			stdLog.Printf("Failed to seed distributor %s: %v", item.Name, err)
		}
	}
}

func seedPaymentMethods(stdLog *log.Logger, items []models.PaymentMethod) {
	for _, item := range items {
		method := item
		if err := models.DB.Where("name = ?", item.Name).FirstOrCreate(&method).Error; err != nil {
			stdLog.Printf("Failed to seed payment method %s: %v", item.Name, err)
		}
	}
}

func seedShippingMethods(stdLog *log.Logger, items []models.ShippingMethod) {
	for _, item := range items {
		method := item
		if err := models.DB.Where("name = ?", item.Name).FirstOrCreate(&method).Error; err != nil {
			stdLog.Printf("Failed to seed shipping method %s: %v", item.Name, err)
		}
	}
}

func seedStaff(stdLog *log.Logger, username, name, role, password string) {
	var count int64
	if err := models.DB.Model(&models.Staff{}).Where("username = ?", username).Count(&count).Error; err != nil || count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash staff password: %v", err)
		return
	}
	staff := models.Staff{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		Status:       constants.AccountStatusActive,
	}
	if err := models.DB.Create(&staff).Error; err != nil {
		stdLog.Printf("Failed to create staff %s: %v", username, err)
		return
	}
	stdLog.Printf("Created staff: %s (%s)", username, role)
}

func seedCustomer(stdLog *log.Logger, name, email, password string) {
	var count int64
	if err := models.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil || count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash customer password: %v", err)
		return
	}
	customer := models.Customer{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Status:       constants.AccountStatusActive,
	}
	if err := models.DB.Create(&customer).Error; err != nil {
		stdLog.Printf("Failed to create customer %s: %v", email, err)
		return
	}
	stdLog.Printf("Created customer: %s", email)
}
