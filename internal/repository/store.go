package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories of one database session. Services receive a
// Store and open transactions through it, so every multi-step operation runs
// against a single transactional session.
type Store interface {
	MenuItems() MenuItemRepository
	Carts() CartRepository
	Orders() OrderRepository
	CartItems(cartID string) LineItemRepository
	OrderItems(orderNumber uint) LineItemRepository

	// WithContext binds the session to ctx for plain reads.
	WithContext(ctx context.Context) Store
	// Transaction runs fn inside a database transaction; any error returned
	// by fn rolls the whole transaction back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) MenuItems() MenuItemRepository {
	return NewMenuItemRepository(s.db)
}

func (s *gormStore) Carts() CartRepository {
	return NewCartRepository(s.db)
}

func (s *gormStore) Orders() OrderRepository {
	return NewOrderRepository(s.db)
}

func (s *gormStore) CartItems(cartID string) LineItemRepository {
	return NewCartItemRepository(s.db, cartID)
}

func (s *gormStore) OrderItems(orderNumber uint) LineItemRepository {
	return NewOrderItemRepository(s.db, orderNumber)
}

func (s *gormStore) WithContext(ctx context.Context) Store {
	return &gormStore{db: s.db.WithContext(ctx)}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
