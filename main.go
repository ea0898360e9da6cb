package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "fullstack.db")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	dbDriver := viper.GetString("DB_DRIVER")
	dbDSN := viper.GetString("DB_DSN")

	// --- Initialize Database ---
	db, err := database.Open(dbDriver, dbDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// Seed the catalog on first run; there is no HTTP surface to create
	// products or categories.
	seedCatalog(productRepo, categoryRepo)

	// --- Initialize Services ---
	catalogService := services.NewCatalogService(productRepo, categoryRepo)
	authService := services.NewAuthService(userRepo)

	// --- Initialize Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	// The storefront frontend is served from another origin and sends
	// credentials, so reflect whatever origin calls us.
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// --- API Routes ---
	catalogHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedCatalog populates an empty store with an initial catalog.
// Prices are in the smallest currency unit.
func seedCatalog(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) {
	existing, err := productRepo.GetAll()
	if err != nil {
		log.Printf("Error checking catalog before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	categories := []models.Category{
		{Category: "Apparel"},
		{Category: "Accessories"},
	}
	for i := range categories {
		if err := categoryRepo.Create(&categories[i]); err != nil {
			log.Printf("Error seeding category %s: %v", categories[i].Category, err)
		}
	}

	products := []models.Product{
		{Title: "Plain White Tee", Price: 1999, Description: "Classic cotton t-shirt in white.", Image: "/images/white-tee.jpg", CategoryID: &categories[0].ID},
		{Title: "Denim Jacket", Price: 6499, Description: "Mid-weight denim jacket with button front.", Image: "/images/denim-jacket.jpg", CategoryID: &categories[0].ID},
		{Title: "Canvas Tote", Price: 2499, Description: "Heavy-duty canvas tote bag.", Image: "/images/canvas-tote.jpg", CategoryID: &categories[1].ID},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Title, err)
		} else {
			log.Printf("Seeded product: %s (ID: %d)", products[i].Title, products[i].ID)
		}
	}
}
