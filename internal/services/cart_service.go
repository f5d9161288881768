package services

import (
	"context"
	"errors"
	"fmt"
	"orderup/internal/models"
	"orderup/internal/repository"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartService interface {
	// GetOrCreateCart returns the cart for cartID, creating an empty one on
	// first use.
	GetOrCreateCart(ctx context.Context, cartID string) (*models.Cart, error)
	GetCart(ctx context.Context, cartID string) (*models.Cart, error)
	SyncCart(ctx context.Context, cartID string, items []DesiredItem) (SyncResult, error)
	AddItem(ctx context.Context, cartID string, itemID uint) error
	EmptyCart(ctx context.Context, cartID string) error
}

type cartService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewCartService(store repository.Store, logger *zap.Logger) CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &cartService{store: store, logger: logger}
}

func (s *cartService) GetOrCreateCart(ctx context.Context, cartID string) (*models.Cart, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}

	var cart *models.Cart
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		carts := tx.Carts()
		_, err := carts.GetByID(cartID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created, err := carts.Create(&models.Cart{CartID: cartID})
			if err != nil {
				return storageError("create cart", err)
			}
			if created {
				s.logger.Info("cart created", zap.String("cart_id", cartID))
			}
		} else if err != nil {
			return storageError("get cart", err)
		}

		cart, err = carts.GetWithItems(cartID)
		return storageError("get cart", err)
	})
	if err != nil {
		return nil, storageError("get or create cart", err)
	}
	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}
	cart, err := s.store.WithContext(ctx).Carts().GetWithItems(cartID)
	if err != nil {
		return nil, lookupError(err, ResourceCart, cartID, "get cart")
	}
	return cart, nil
}

func (s *cartService) SyncCart(ctx context.Context, cartID string, items []DesiredItem) (SyncResult, error) {
	if err := validateCartID(cartID); err != nil {
		return SyncResult{}, err
	}

	var result SyncResult
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Carts().GetByID(cartID); err != nil {
			return lookupError(err, ResourceCart, cartID, "get cart")
		}
		var err error
		result, err = Reconcile(tx.CartItems(cartID), tx.MenuItems(), items)
		return err
	})
	if err != nil {
		return SyncResult{}, storageError("sync cart", err)
	}

	s.logger.Info("cart synced",
		zap.String("cart_id", cartID),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("deleted", result.Deleted),
	)
	return result, nil
}

func (s *cartService) AddItem(ctx context.Context, cartID string, itemID uint) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}

	var count int
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Carts().GetByID(cartID); err != nil {
			return lookupError(err, ResourceCart, cartID, "get cart")
		}
		if _, err := tx.MenuItems().GetByID(itemID); err != nil {
			return lookupError(err, ResourceMenuItem, itemID, "get menu item")
		}

		lines := tx.CartItems(cartID)
		existing, err := lines.List()
		if err != nil {
			return storageError("list line items", err)
		}
		for _, line := range existing {
			if line.ItemID == itemID {
				count = line.Count + 1
				return storageError("update line item", lines.UpdateCount(line.ID, count))
			}
		}
		count = 1
		return storageError("create line item", lines.Create(itemID, count))
	})
	if err != nil {
		return storageError("add cart item", err)
	}

	s.logger.Info("cart item added", zap.String("cart_id", cartID), zap.Uint("item_id", itemID), zap.Int("count", count))
	return nil
}

// EmptyCart removes every line of the cart but keeps the cart itself. Emptying
// an unknown or already empty cart succeeds without writing anything.
func (s *cartService) EmptyCart(ctx context.Context, cartID string) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.CartItems(cartID).DeleteAll()
	})
	if err != nil {
		return storageError("empty cart", err)
	}

	s.logger.Info("cart emptied", zap.String("cart_id", cartID))
	return nil
}

func validateCartID(cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return &ValidationError{Field: "cart_id", Message: "is required"}
	}
	if utf8.RuneCountInString(cartID) > models.MaxCartIDLength {
		return &ValidationError{Field: "cart_id", Message: fmt.Sprintf("must be at most %d characters", models.MaxCartIDLength)}
	}
	return nil
}
