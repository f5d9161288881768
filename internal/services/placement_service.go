package services

import (
	"context"
	"orderup/internal/models"
	"orderup/internal/repository"

	"go.uber.org/zap"
)

type PlacementService interface {
	// PlaceFromCart turns the cart's current lines into a new order and
	// empties the cart, all in one transaction.
	PlaceFromCart(ctx context.Context, cartID string) (*models.Order, error)
}

type placementService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewPlacementService(store repository.Store, logger *zap.Logger) PlacementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &placementService{store: store, logger: logger}
}

func (s *placementService) PlaceFromCart(ctx context.Context, cartID string) (*models.Order, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}

	var orderNumber uint
	var copied int
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Carts().GetByID(cartID); err != nil {
			return lookupError(err, ResourceCart, cartID, "get cart")
		}

		cartLines := tx.CartItems(cartID)
		lines, err := cartLines.List()
		if err != nil {
			return storageError("list cart lines", err)
		}

		order := &models.Order{}
		if err := tx.Orders().Create(order); err != nil {
			return storageError("create order", err)
		}
		orderNumber = order.OrderNumber

		orderLines := tx.OrderItems(order.OrderNumber)
		for _, line := range mergeLines(lines) {
			if err := orderLines.Create(line.ItemID, line.Count); err != nil {
				return storageError("copy cart line", err)
			}
			copied++
		}

		return storageError("empty cart", cartLines.DeleteAll())
	})
	if err != nil {
		return nil, storageError("place cart", err)
	}

	s.logger.Info("cart placed as order",
		zap.String("cart_id", cartID),
		zap.Uint("order_number", orderNumber),
		zap.Int("lines", copied),
	)

	order, err := s.store.WithContext(ctx).Orders().GetWithItems(orderNumber)
	if err != nil {
		return nil, lookupError(err, ResourceOrder, orderNumber, "get order")
	}
	return order, nil
}

// mergeLines drops non-positive counts and folds duplicate menu items into
// one line, keeping first-seen order.
func mergeLines(lines []models.LineItem) []models.LineItem {
	merged := make([]models.LineItem, 0, len(lines))
	index := make(map[uint]int, len(lines))
	for _, line := range lines {
		if line.Count <= 0 {
			continue
		}
		if i, ok := index[line.ItemID]; ok {
			merged[i].Count += line.Count
			continue
		}
		index[line.ItemID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}
