package models

// LineItem is the storage neutral view of a cart or order row:
// Count units of the menu item ItemID.
type LineItem struct {
	ID     uint
	ItemID uint
	Count  int
}

// AllModels lists every table in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&MenuItem{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
	}
}
