package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/cart"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/category"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/config"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/db"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/handler"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/inventory"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/order"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/product"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/sales"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/storage"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/user"
)

// Indirections for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(cfg *config.Config, database *sql.DB) *gin.Engine {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	inventoryRepo := inventory.NewRepository(database)
	inventorySvc := inventory.NewService(inventoryRepo)

	salesRepo := sales.NewRepository(database)
	salesSvc := sales.NewService(salesRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	h := handler.New(cfg, handler.Services{
		Products:   productSvc,
		Categories: categorySvc,
		Carts:      cartSvc,
		Orders:     orderSvc,
		Inventory:  inventorySvc,
		Sales:      salesSvc,
		Users:      userSvc,
	},
		storage.NewImageStore(cfg.UploadDir),
		storage.NewProofStore(cfg.PaymentsDir),
	)

	router := h.Router()
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return router
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	log.Printf("🚀 server running at http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
