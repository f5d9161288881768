package router

import (
	"net/http"
	"orderup/internal/handlers"
	"orderup/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Menu  *handlers.MenuHandler
	Cart  *handlers.CartHandler
	Order *handlers.OrderHandler
}

// New builds the engine with middleware and every API route registered.
func New(h Handlers, logger *zap.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(allowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	menu := r.Group("/menu")
	{
		menu.POST("/add", h.Menu.AddMenuItem)
		menu.GET("/list", h.Menu.ListMenuItems)
		menu.POST("/delete/:item_id", h.Menu.DeleteMenuItem)
	}

	cart := r.Group("/cart")
	{
		cart.GET("/view/:cart_id", h.Cart.ViewCart)
		cart.POST("/sync", h.Cart.SyncCart)
		cart.POST("/add_item/:cart_id/:item_id", h.Cart.AddItem)
		cart.POST("/empty/:cart_id", h.Cart.EmptyCart)
		cart.POST("/place/:cart_id", h.Cart.PlaceOrder)
	}

	order := r.Group("/order")
	{
		order.POST("/add", h.Order.AddOrder)
		order.GET("/list", h.Order.ListOrders)
		order.GET("/view/:order_number", h.Order.ViewOrder)
		order.POST("/sync", h.Order.SyncOrder)
		order.POST("/fulfill", h.Order.FulfillOrder)
		order.POST("/delete/:order_number", h.Order.DeleteOrder)
	}

	return r
}
