package handlers

import "orderup/internal/services"

type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type MenuItemRef struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// SyncItemRequest mirrors a line of a cart or order snapshot. Only the menu
// item id is read from the nested item; name and description are ignored.
type SyncItemRequest struct {
	Item  *MenuItemRef `json:"item" binding:"required"`
	Count *int         `json:"count" binding:"required,min=0"`
}

type CartSyncRequest struct {
	CartID string            `json:"cart_id" binding:"required"`
	Items  []SyncItemRequest `json:"items" binding:"required,dive"`
}

type OrderSyncRequest struct {
	OrderNumber uint              `json:"order_number" binding:"required"`
	Items       []SyncItemRequest `json:"items" binding:"required,dive"`
}

type FulfillRequest struct {
	OrderNumber uint  `json:"order_number" binding:"required"`
	Fulfilled   *bool `json:"fulfilled" binding:"required"`
}

func desiredItems(items []SyncItemRequest) []services.DesiredItem {
	desired := make([]services.DesiredItem, 0, len(items))
	for _, item := range items {
		desired = append(desired, services.DesiredItem{ItemID: item.Item.ItemID, Count: *item.Count})
	}
	return desired
}
