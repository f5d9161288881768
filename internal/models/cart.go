package models

import "time"

// Cart is keyed by a client chosen identifier. It is emptied, never deleted,
// when it gets placed as an order.
type Cart struct {
	CartID    string     `json:"cart_id" gorm:"primaryKey;size:100"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;references:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"-"`
}

// CartItem belongs to its menu item. The foreign key field is named
// MenuItemID so gorm cannot mistake Item for a has-one relation keyed by
// MenuItem.ItemID.
type CartItem struct {
	ID         uint     `json:"-" gorm:"primaryKey"`
	CartID     string   `json:"-" gorm:"size:100;not null;index"`
	MenuItemID uint     `json:"-" gorm:"column:item_id;not null;index"`
	Item       MenuItem `json:"item" gorm:"foreignKey:MenuItemID;references:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Count      int      `json:"count" gorm:"not null;default:0"`
}

const MaxCartIDLength = 100
