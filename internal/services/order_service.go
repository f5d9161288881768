package services

import (
	"context"
	"orderup/internal/models"
	"orderup/internal/repository"

	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context) (*models.Order, error)
	GetOrder(ctx context.Context, orderNumber uint) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	// SyncOrder reconciles the order's lines. Fulfilled orders are locked and
	// return ConflictError.
	SyncOrder(ctx context.Context, orderNumber uint, items []DesiredItem) (SyncResult, error)
	SetFulfilled(ctx context.Context, orderNumber uint, fulfilled bool) error
	DeleteOrder(ctx context.Context, orderNumber uint) error
}

type orderService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewOrderService(store repository.Store, logger *zap.Logger) OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &orderService{store: store, logger: logger}
}

func (s *orderService) CreateOrder(ctx context.Context) (*models.Order, error) {
	order := &models.Order{}
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Orders().Create(order)
	})
	if err != nil {
		return nil, storageError("create order", err)
	}
	order.Items = []models.OrderItem{}

	s.logger.Info("order created", zap.Uint("order_number", order.OrderNumber))
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderNumber uint) (*models.Order, error) {
	order, err := s.store.WithContext(ctx).Orders().GetWithItems(orderNumber)
	if err != nil {
		return nil, lookupError(err, ResourceOrder, orderNumber, "get order")
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.store.WithContext(ctx).Orders().GetAllWithItems()
	if err != nil {
		return nil, storageError("list orders", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *orderService) SyncOrder(ctx context.Context, orderNumber uint, items []DesiredItem) (SyncResult, error) {
	var result SyncResult
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		order, err := tx.Orders().GetByNumber(orderNumber)
		if err != nil {
			return lookupError(err, ResourceOrder, orderNumber, "get order")
		}
		if order.Fulfilled {
			return &ConflictError{Resource: ResourceOrder, ID: orderNumber, Message: "order is fulfilled; mark it unfulfilled before editing"}
		}
		result, err = Reconcile(tx.OrderItems(orderNumber), tx.MenuItems(), items)
		return err
	})
	if err != nil {
		return SyncResult{}, storageError("sync order", err)
	}

	s.logger.Info("order synced",
		zap.Uint("order_number", orderNumber),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("deleted", result.Deleted),
	)
	return result, nil
}

func (s *orderService) SetFulfilled(ctx context.Context, orderNumber uint, fulfilled bool) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		return lookupError(tx.Orders().SetFulfilled(orderNumber, fulfilled), ResourceOrder, orderNumber, "set order fulfillment")
	})
	if err != nil {
		return storageError("set order fulfillment", err)
	}

	s.logger.Info("order fulfillment changed", zap.Uint("order_number", orderNumber), zap.Bool("fulfilled", fulfilled))
	return nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderNumber uint) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		return lookupError(tx.Orders().Delete(orderNumber), ResourceOrder, orderNumber, "delete order")
	})
	if err != nil {
		return storageError("delete order", err)
	}

	s.logger.Info("order deleted", zap.Uint("order_number", orderNumber))
	return nil
}
