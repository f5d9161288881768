package services

import (
	"context"
	"orderup/internal/models"
	"orderup/internal/repository"
	"orderup/internal/testutil"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	store     repository.Store
	menu      MenuService
	carts     CartService
	orders    OrderService
	placement PlacementService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	store := repository.NewStore(db)
	return &testEnv{
		db:        db,
		store:     store,
		menu:      NewMenuService(store, nil, 0, nil),
		carts:     NewCartService(store, nil),
		orders:    NewOrderService(store, nil),
		placement: NewPlacementService(store, nil),
	}
}

func (e *testEnv) addMenuItem(t *testing.T, name string) uint {
	t.Helper()
	item, err := e.menu.CreateMenuItem(context.Background(), name, "")
	require.NoError(t, err)
	return item.ItemID
}

// cartState returns menu item id -> count for the cart.
func (e *testEnv) cartState(t *testing.T, cartID string) map[uint]int {
	t.Helper()
	cart, err := e.carts.GetCart(context.Background(), cartID)
	require.NoError(t, err)
	return cartCounts(cart)
}

func (e *testEnv) orderState(t *testing.T, orderNumber uint) map[uint]int {
	t.Helper()
	order, err := e.orders.GetOrder(context.Background(), orderNumber)
	require.NoError(t, err)
	return orderCounts(order)
}

// cartCounts returns menu item id -> count.
func cartCounts(cart *models.Cart) map[uint]int {
	out := make(map[uint]int, len(cart.Items))
	for _, line := range cart.Items {
		out[line.MenuItemID] += line.Count
	}
	return out
}

func orderCounts(order *models.Order) map[uint]int {
	out := make(map[uint]int, len(order.Items))
	for _, line := range order.Items {
		out[line.MenuItemID] += line.Count
	}
	return out
}
