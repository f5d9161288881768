package repository

import (
	"orderup/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LineItemRepository manages the lines owned by a single cart or order.
type LineItemRepository interface {
	List() ([]models.LineItem, error)
	Create(itemID uint, count int) error
	UpdateCount(lineID uint, count int) error
	Delete(lineIDs ...uint) error
	DeleteAll() error
}

type lineItemRepository struct {
	db          *gorm.DB
	ownerColumn string
	owner       interface{}
	newRow      func(itemID uint, count int) interface{}
}

func NewCartItemRepository(db *gorm.DB, cartID string) LineItemRepository {
	return &lineItemRepository{
		db:          db,
		ownerColumn: "cart_id",
		owner:       cartID,
		newRow: func(itemID uint, count int) interface{} {
			return &models.CartItem{CartID: cartID, MenuItemID: itemID, Count: count}
		},
	}
}

func NewOrderItemRepository(db *gorm.DB, orderNumber uint) LineItemRepository {
	return &lineItemRepository{
		db:          db,
		ownerColumn: "order_number",
		owner:       orderNumber,
		newRow: func(itemID uint, count int) interface{} {
			return &models.OrderItem{OrderNumber: orderNumber, MenuItemID: itemID, Count: count}
		},
	}
}

func (r *lineItemRepository) owned() *gorm.DB {
	return r.db.Model(r.newRow(0, 0)).Where(r.ownerColumn+" = ?", r.owner)
}

func (r *lineItemRepository) List() ([]models.LineItem, error) {
	var lines []models.LineItem
	err := r.owned().Select("id", "item_id", "count").Order("id").Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *lineItemRepository) Create(itemID uint, count int) error {
	return r.db.Omit(clause.Associations).Create(r.newRow(itemID, count)).Error
}

func (r *lineItemRepository) UpdateCount(lineID uint, count int) error {
	result := r.owned().Where("id = ?", lineID).Update("count", count)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *lineItemRepository) Delete(lineIDs ...uint) error {
	if len(lineIDs) == 0 {
		return nil
	}
	return r.db.Where(r.ownerColumn+" = ? AND id IN ?", r.owner, lineIDs).Delete(r.newRow(0, 0)).Error
}

func (r *lineItemRepository) DeleteAll() error {
	return r.db.Where(r.ownerColumn+" = ?", r.owner).Delete(r.newRow(0, 0)).Error
}
