package repository

import (
	"orderup/internal/models"

	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	GetByIDs(ids []uint) ([]models.MenuItem, error)
	GetAll() ([]models.MenuItem, error)
	Delete(id uint) error
	CountReferences(id uint) (int64, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuItemRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) GetByIDs(ids []uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.Where("item_id IN ?", ids).Order("item_id").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Order("item_id").Find(&items).Error
	return items, err
}

// Delete returns gorm.ErrRecordNotFound when no row matched.
func (r *menuItemRepository) Delete(id uint) error {
	result := r.db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountReferences counts cart and order lines pointing at the menu item.
func (r *menuItemRepository) CountReferences(id uint) (int64, error) {
	var cartRefs, orderRefs int64
	if err := r.db.Model(&models.CartItem{}).Where("item_id = ?", id).Count(&cartRefs).Error; err != nil {
		return 0, err
	}
	if err := r.db.Model(&models.OrderItem{}).Where("item_id = ?", id).Count(&orderRefs).Error; err != nil {
		return 0, err
	}
	return cartRefs + orderRefs, nil
}
