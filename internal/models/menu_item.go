package models

import "time"

type MenuItem struct {
	ItemID      uint      `json:"item_id" gorm:"primaryKey;autoIncrement;column:item_id"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:300;not null;default:''"`
	CreatedAt   time.Time `json:"-"`
}

const (
	MaxMenuItemNameLength        = 100
	MaxMenuItemDescriptionLength = 300
)
