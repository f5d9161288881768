package repository

import (
	"orderup/internal/models"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	// Create inserts the cart unless the key is already taken and reports
	// whether a row was inserted.
	Create(cart *models.Cart) (bool, error)
	GetByID(cartID string) (*models.Cart, error)
	GetWithItems(cartID string) (*models.Cart, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(cart *models.Cart) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(cart)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *cartRepository) GetByID(cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("cart_id = ?", cartID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetWithItems(cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("cart_id = ?", cartID).Preload("Items.Item").First(&cart).Error
	if err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	sort.Slice(cart.Items, func(i, j int) bool { return cart.Items[i].ID < cart.Items[j].ID })
	return &cart, nil
}
