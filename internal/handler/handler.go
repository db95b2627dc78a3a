// Package handler wires the HTTP surface: storefront catalog, cart and
// checkout for customers, plus the admin console endpoints.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/patriciamaedppuaso/Elective4-ETR/internal/cart"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/category"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/config"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/inventory"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/logger"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/middleware"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/order"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/product"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/sales"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/storage"
	"github.com/patriciamaedppuaso/Elective4-ETR/internal/user"
)

type Handler struct {
	cfg        *config.Config
	products   product.Service
	categories category.Service
	carts      cart.Service
	orders     order.Service
	inventory  inventory.Service
	sales      sales.Service
	users      user.Service
	images     storage.Store
	proofs     storage.Store
}

type Services struct {
	Products   product.Service
	Categories category.Service
	Carts      cart.Service
	Orders     order.Service
	Inventory  inventory.Service
	Sales      sales.Service
	Users      user.Service
}

func New(cfg *config.Config, svcs Services, images, proofs storage.Store) *Handler {
	return &Handler{
		cfg:        cfg,
		products:   svcs.Products,
		categories: svcs.Categories,
		carts:      svcs.Carts,
		orders:     svcs.Orders,
		inventory:  svcs.Inventory,
		sales:      svcs.Sales,
		users:      svcs.Users,
		images:     images,
		proofs:     proofs,
	}
}

// Router assembles the full route table and middleware chain.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		logger.RequestID(),
		logger.RequestLogger(),
		middleware.Identity(),
	)

	r.Static("/static", "./static")

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/brands", h.ListBrands)
		api.GET("/categories", h.ListCategories)

		authn := api.Group("", middleware.RateLimit(true))
		{
			authn.POST("/register", h.Register)
			authn.POST("/login", h.Login)
			authn.POST("/logout", h.Logout)
			authn.POST("/admin/login", h.AdminLogin)
		}

		me := api.Group("", middleware.RequireUser(), middleware.RateLimit(false))
		{
			me.GET("/cart", h.GetCart)
			me.POST("/cart/:productID", h.AddToCart)
			me.PUT("/cart/:productID", h.SetCartQuantity)
			me.DELETE("/cart/:productID", h.RemoveFromCart)

			me.POST("/checkout", h.Checkout)
			me.GET("/orders", h.ListMyOrders)
			me.GET("/orders/:id", h.GetOrder)
		}

		admin := api.Group("/admin", middleware.RequireAdmin(), middleware.RateLimit(false))
		{
			admin.POST("/register", h.AdminRegister)

			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.POST("/categories", h.AddCategory)
			admin.PUT("/categories/:id", h.RenameCategory)
			admin.DELETE("/categories/:id", h.DeleteCategory)

			admin.GET("/inventory", h.ListInventoryLogs)
			admin.POST("/inventory", h.AdjustStock)

			admin.GET("/orders", h.ListAdminOrders)
			admin.POST("/orders/:id/approve", h.ApproveOrder)
			admin.POST("/orders/:id/decline", h.DeclineOrder)
			admin.POST("/orders/:id/status", h.UpdateOrderStatus)

			admin.GET("/sales", h.SalesReport)
			admin.GET("/sales/export", h.ExportSalesReport)

			admin.GET("/users", h.ListUsers)
			admin.POST("/users/:id/reset-password", h.ResetUserPassword)
			admin.POST("/users/:id/toggle", h.ToggleUserActive)
		}
	}

	return r
}
