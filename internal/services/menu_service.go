package services

import (
	"context"
	"errors"
	"fmt"
	"orderup/internal/models"
	"orderup/internal/repository"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

type MenuService interface {
	CreateMenuItem(ctx context.Context, name, description string) (*models.MenuItem, error)
	GetMenuItem(ctx context.Context, itemID uint) (*models.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID uint) error
}

// MenuCache stores the full menu list. Implementations return an error on a
// miss; any cache error falls back to the database.
type MenuCache interface {
	GetMenu(ctx context.Context) ([]models.MenuItem, error)
	SetMenu(ctx context.Context, items []models.MenuItem, ttl time.Duration) error
	InvalidateMenu(ctx context.Context) error
}

type menuService struct {
	store    repository.Store
	cache    MenuCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewMenuService builds the catalog service. cache may be nil.
func NewMenuService(store repository.Store, cache MenuCache, cacheTTL time.Duration, logger *zap.Logger) MenuService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &menuService{store: store, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (s *menuService) CreateMenuItem(ctx context.Context, name, description string) (*models.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if utf8.RuneCountInString(name) > models.MaxMenuItemNameLength {
		return nil, &ValidationError{Field: "name", Message: fmt.Sprintf("must be at most %d characters", models.MaxMenuItemNameLength)}
	}
	if utf8.RuneCountInString(description) > models.MaxMenuItemDescriptionLength {
		return nil, &ValidationError{Field: "description", Message: fmt.Sprintf("must be at most %d characters", models.MaxMenuItemDescriptionLength)}
	}

	item := &models.MenuItem{Name: name, Description: description}
	if err := s.store.WithContext(ctx).MenuItems().Create(item); err != nil {
		return nil, storageError("create menu item", err)
	}

	s.invalidate(ctx)
	s.logger.Info("menu item created", zap.Uint("item_id", item.ItemID), zap.String("name", item.Name))
	return item, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, itemID uint) (*models.MenuItem, error) {
	item, err := s.store.WithContext(ctx).MenuItems().GetByID(itemID)
	if err != nil {
		return nil, lookupError(err, ResourceMenuItem, itemID, "get menu item")
	}
	return item, nil
}

func (s *menuService) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		items, err := s.cache.GetMenu(ctx)
		if err == nil {
			return items, nil
		}
		s.logger.Debug("menu cache unavailable", zap.Error(err))
	}

	items, err := s.store.WithContext(ctx).MenuItems().GetAll()
	if err != nil {
		return nil, storageError("list menu items", err)
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, items, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache menu", zap.Error(err))
		}
	}
	return items, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, itemID uint) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		menu := tx.MenuItems()
		if _, err := menu.GetByID(itemID); err != nil {
			return lookupError(err, ResourceMenuItem, itemID, "get menu item")
		}

		refs, err := menu.CountReferences(itemID)
		if err != nil {
			return storageError("count menu item references", err)
		}
		if refs > 0 {
			return &IntegrityError{Resource: ResourceMenuItem, ID: itemID, References: refs}
		}

		return lookupError(menu.Delete(itemID), ResourceMenuItem, itemID, "delete menu item")
	})
	if err != nil {
		var integrity *IntegrityError
		if errors.As(err, &integrity) {
			s.logger.Info("menu item delete refused", zap.Uint("item_id", itemID), zap.Int64("references", integrity.References))
		}
		return storageError("delete menu item", err)
	}

	s.invalidate(ctx)
	s.logger.Info("menu item deleted", zap.Uint("item_id", itemID))
	return nil
}

func (s *menuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(ctx); err != nil {
		s.logger.Warn("failed to invalidate menu cache", zap.Error(err))
	}
}
