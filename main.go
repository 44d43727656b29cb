package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ISSA5922/ambertek-export/cart"
	"github.com/ISSA5922/ambertek-export/catalog"
	orderControllers "github.com/ISSA5922/ambertek-export/controllers/order"
	"github.com/ISSA5922/ambertek-export/middleware"
	"github.com/ISSA5922/ambertek-export/models"
	"github.com/ISSA5922/ambertek-export/notify"
	"github.com/ISSA5922/ambertek-export/orders"
	"github.com/ISSA5922/ambertek-export/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.HomepageBanner{},
		&models.CategoryBanner{},
		&models.FeaturedProduct{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	carts := cart.NewStore()
	cat := catalog.NewStore(db)
	orderStore := orders.NewGormStore(db)
	feed := orderControllers.NewFeed()

	dispatcher := notify.NewDispatcher(
		notify.LogSMSSender{},
		initEmailSender(),
		orderStore,
		notify.Config{
			FromAddress: getenvDefault("DEFAULT_FROM_EMAIL", "Ambertek Exports <noreply@ambertek.com>"),
			AdminEmail:  os.Getenv("ORDER_NOTIFICATION_EMAIL"),
			AdminPhone:  os.Getenv("ADMIN_PHONE"),
		},
	)

	// Every notification channel hangs off the order transaction as a
	// post-commit hook; a failing hook can never undo the order.
	assembler := orders.NewAssembler(cat, orderStore, carts,
		dispatcher.NotifyOrderCreated,
		dispatcher.EmailOrderCreated,
		feed.OrderCreated,
	)

	guard := middleware.NewGuard()

	routes.SetupRoutes(r, routes.Deps{
		DB:         db,
		Catalog:    cat,
		Carts:      carts,
		Assembler:  assembler,
		OrderStore: orderStore,
		Guard:      guard,
		Feed:       feed,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func initEmailSender() *notify.SMTPEmailSender {
	port, err := strconv.Atoi(getenvDefault("SMTP_PORT", "587"))
	if err != nil {
		log.Fatalf("❌ Invalid SMTP_PORT: %v", err)
	}
	return notify.NewSMTPEmailSender(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
