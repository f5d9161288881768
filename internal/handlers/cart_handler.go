package handlers

import (
	"net/http"
	"orderup/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	cartService      services.CartService
	placementService services.PlacementService
	logger           *zap.Logger
}

func NewCartHandler(cartService services.CartService, placementService services.PlacementService, logger *zap.Logger) *CartHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartHandler{
		cartService:      cartService,
		placementService: placementService,
		logger:           logger,
	}
}

// ViewCart returns the cart snapshot. Unknown carts are created on first view.
func (h *CartHandler) ViewCart(c *gin.Context) {
	cart, err := h.cartService.GetOrCreateCart(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) SyncCart(c *gin.Context) {
	var req CartSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.cartService.SyncCart(c.Request.Context(), req.CartID, desiredItems(req.Items))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart Synced", "result": result})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	itemID, ok := uintParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.cartService.AddItem(c.Request.Context(), c.Param("cart_id"), itemID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item Added"})
}

func (h *CartHandler) EmptyCart(c *gin.Context) {
	if err := h.cartService.EmptyCart(c.Request.Context(), c.Param("cart_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart Emptied"})
}

func (h *CartHandler) PlaceOrder(c *gin.Context) {
	order, err := h.placementService.PlaceFromCart(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order Placed", "order_number": order.OrderNumber})
}
