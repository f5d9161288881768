package handlers

import (
	"net/http"
	"orderup/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orderService services.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService services.OrderService, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{orderService: orderService, logger: logger}
}

func (h *OrderHandler) AddOrder(c *gin.Context) {
	order, err := h.orderService.CreateOrder(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order Added", "order_number": order.OrderNumber})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ViewOrder(c *gin.Context) {
	orderNumber, ok := uintParam(c, "order_number")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderNumber)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) SyncOrder(c *gin.Context) {
	var req OrderSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.orderService.SyncOrder(c.Request.Context(), req.OrderNumber, desiredItems(req.Items))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order Synced", "result": result})
}

func (h *OrderHandler) FulfillOrder(c *gin.Context) {
	var req FulfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.orderService.SetFulfilled(c.Request.Context(), req.OrderNumber, *req.Fulfilled); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order Updated", "order_number": req.OrderNumber, "fulfilled": *req.Fulfilled})
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderNumber, ok := uintParam(c, "order_number")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderNumber); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order Deleted"})
}
