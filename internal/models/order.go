package models

import "time"

type Order struct {
	OrderNumber uint        `json:"order_number" gorm:"primaryKey;autoIncrement;column:order_number"`
	Fulfilled   bool        `json:"fulfilled" gorm:"not null;default:false"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderNumber;references:OrderNumber;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID          uint     `json:"-" gorm:"primaryKey"`
	OrderNumber uint     `json:"-" gorm:"not null;index"`
	MenuItemID  uint     `json:"-" gorm:"column:item_id;not null;index"`
	Item        MenuItem `json:"item" gorm:"foreignKey:MenuItemID;references:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Count       int      `json:"count" gorm:"not null;default:0"`
}
