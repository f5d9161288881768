package handlers

import (
	"net/http"
	"orderup/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuHandler struct {
	menuService services.MenuService
	logger      *zap.Logger
}

func NewMenuHandler(menuService services.MenuService, logger *zap.Logger) *MenuHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuHandler{menuService: menuService, logger: logger}
}

func (h *MenuHandler) AddMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.menuService.CreateMenuItem(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu Item Added", "item": item})
}

func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	items, err := h.menuService.ListMenuItems(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	itemID, ok := uintParam(c, "item_id")
	if !ok {
		return
	}

	if err := h.menuService.DeleteMenuItem(c.Request.Context(), itemID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu Item Deleted"})
}
