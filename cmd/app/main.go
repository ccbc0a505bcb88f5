package main

import (
	"log"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/config"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/db"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/repository"
	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// .env is optional; deployments set the variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment")
	}
	cfg := config.Load()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	itemRepo := repository.NewItemRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo)
	cartSvc := services.NewCartService(pool, userRepo, cartRepo)
	orderSvc := services.NewOrderService(pool, cartRepo, orderRepo)
	itemSvc := services.NewItemService(itemRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerCartRoutes(api, cartSvc)
	registerOrderRoutes(api, orderSvc)
	registerItemRoutes(e, itemSvc)

	// ======================
	// SERVER
	// ======================
	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
