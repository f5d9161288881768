package repository

import (
	"orderup/internal/models"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByNumber(orderNumber uint) (*models.Order, error)
	GetWithItems(orderNumber uint) (*models.Order, error)
	GetAllWithItems() ([]models.Order, error)
	SetFulfilled(orderNumber uint, fulfilled bool) error
	Delete(orderNumber uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Omit(clause.Associations).Create(order).Error
}

func (r *orderRepository) GetByNumber(orderNumber uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, orderNumber).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetWithItems(orderNumber uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items.Item").First(&order, orderNumber).Error
	if err != nil {
		return nil, err
	}
	sortOrderItems(&order)
	return &order, nil
}

func (r *orderRepository) GetAllWithItems() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items.Item").Order("order_number").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		sortOrderItems(&orders[i])
	}
	return orders, nil
}

// SetFulfilled returns gorm.ErrRecordNotFound when the order does not exist.
func (r *orderRepository) SetFulfilled(orderNumber uint, fulfilled bool) error {
	result := r.db.Model(&models.Order{}).Where("order_number = ?", orderNumber).Update("fulfilled", fulfilled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the order and its lines. Lines are deleted explicitly so the
// cascade holds on engines without foreign key enforcement.
func (r *orderRepository) Delete(orderNumber uint) error {
	if err := r.db.Where("order_number = ?", orderNumber).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	result := r.db.Delete(&models.Order{}, orderNumber)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func sortOrderItems(order *models.Order) {
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	sort.Slice(order.Items, func(i, j int) bool { return order.Items[i].ID < order.Items[j].ID })
}
