package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/premstore-git/premium-store-api/account"
	"github.com/premstore-git/premium-store-api/cart"
	"github.com/premstore-git/premium-store-api/catalog"
	"github.com/premstore-git/premium-store-api/checkout"
	"github.com/premstore-git/premium-store-api/routes"
	"github.com/premstore-git/premium-store-api/store"
)

func main() {
	log.Println("✅ Starting premium store API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init persistent store
	kv := initStore()

	// Components
	directory := account.NewDirectory(kv)
	productCatalog := catalog.NewCatalog(kv)
	cartEngine := cart.NewEngine(kv)
	orchestrator := checkout.NewOrchestrator(directory, cartEngine)

	// Idempotent seeding: admin account and sample catalog on first run
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := directory.InitializeDefaultAdmin(ctx); err != nil {
		log.Fatalf("❌ Failed to seed admin account: %v", err)
	}
	if err := productCatalog.Initialize(ctx); err != nil {
		log.Fatalf("❌ Failed to seed catalog: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Directory:    directory,
		Catalog:      productCatalog,
		Cart:         cartEngine,
		Orchestrator: orchestrator,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore picks the persistence driver from STORE_DRIVER: file (default),
// postgres, redis, or memory.
func initStore() store.Store {
	driver := os.Getenv("STORE_DRIVER")
	if driver == "" {
		driver = "file"
	}

	switch driver {
	case "postgres":
		db := initDatabase()
		kv, err := store.NewGormStore(db)
		if err != nil {
			log.Fatalf("❌ Failed to prepare KV table: %v", err)
		}
		log.Println("✅ Using postgres store")
		return kv

	case "redis":
		kv, err := store.NewRedisStore(os.Getenv("REDIS_URL"))
		if err != nil {
			log.Fatalf("❌ Failed to connect Redis: %v", err)
		}
		log.Println("✅ Using redis store")
		return kv

	case "memory":
		log.Println("✅ Using in-memory store (state is lost on restart)")
		return store.NewMemoryStore()

	case "file":
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "./data"
		}
		kv, err := store.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("❌ Failed to open data directory: %v", err)
		}
		if backupDir := os.Getenv("BACKUP_DIR"); backupDir != "" {
			// Daily snapshot at 2 AM, keep 4 days
			go store.StartDailySnapshots(dataDir, backupDir, 4*24*time.Hour, 2, 0)
		}
		log.Printf("✅ Using file store at %s", dataDir)
		return kv

	default:
		log.Fatalf("❌ Unknown STORE_DRIVER %q", driver)
		return nil
	}
}

// initDatabase sets up the GORM DB connection for the postgres driver.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := "host=" + getEnv("DB_HOST", "localhost") +
		" user=" + getEnv("DB_USER", "postgres") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + getEnv("DB_NAME", "premium_store") +
		" port=" + getEnv("DB_PORT", "5432") +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
