package services

import (
	"fmt"
	"orderup/internal/models"
	"orderup/internal/repository"
)

// DesiredItem is one entry of a client submitted container snapshot.
type DesiredItem struct {
	ItemID uint
	Count  int
}

// SyncResult tallies the writes a reconciliation performed.
type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

func (r SyncResult) Writes() int {
	return r.Created + r.Updated + r.Deleted
}

// Reconcile rewrites the lines of one container so they match desired.
//
// The desired state is authoritative: lines for menu items it does not
// mention are deleted, as are lines whose desired count is zero. Duplicate
// entries resolve to the last occurrence. Every menu item is resolved before
// the first write, so an unknown item fails the whole call. Lines that
// already match are left untouched, which makes a repeated call write-free.
//
// Reconcile does not check that the container exists and must run inside the
// caller's transaction.
func Reconcile(lines repository.LineItemRepository, menu repository.MenuItemRepository, desired []DesiredItem) (SyncResult, error) {
	var result SyncResult

	wanted := make(map[uint]int, len(desired))
	itemOrder := make([]uint, 0, len(desired))
	for _, entry := range desired {
		if entry.Count < 0 {
			return result, &ValidationError{
				Field:   "count",
				Message: fmt.Sprintf("menu item %d has negative count %d", entry.ItemID, entry.Count),
			}
		}
		if _, seen := wanted[entry.ItemID]; !seen {
			itemOrder = append(itemOrder, entry.ItemID)
		}
		wanted[entry.ItemID] = entry.Count
	}

	if err := resolveMenuItems(menu, itemOrder); err != nil {
		return result, err
	}

	existing, err := lines.List()
	if err != nil {
		return result, storageError("list line items", err)
	}

	// First line per menu item survives; later duplicates, unmentioned items
	// and zero counts are stale.
	kept := make(map[uint]models.LineItem, len(existing))
	var stale []uint
	for _, line := range existing {
		count, mentioned := wanted[line.ItemID]
		_, duplicate := kept[line.ItemID]
		if duplicate || !mentioned || count <= 0 {
			stale = append(stale, line.ID)
			continue
		}
		kept[line.ItemID] = line
	}

	for _, itemID := range itemOrder {
		count := wanted[itemID]
		if count <= 0 {
			continue
		}
		if line, ok := kept[itemID]; ok {
			if line.Count != count {
				if err := lines.UpdateCount(line.ID, count); err != nil {
					return result, storageError("update line item", err)
				}
				result.Updated++
			}
			continue
		}
		if err := lines.Create(itemID, count); err != nil {
			return result, storageError("create line item", err)
		}
		result.Created++
	}

	if len(stale) > 0 {
		if err := lines.Delete(stale...); err != nil {
			return result, storageError("delete line items", err)
		}
		result.Deleted = len(stale)
	}

	return result, nil
}

func resolveMenuItems(menu repository.MenuItemRepository, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := menu.GetByIDs(ids)
	if err != nil {
		return storageError("resolve menu items", err)
	}

	known := make(map[uint]struct{}, len(found))
	for _, item := range found {
		known[item.ItemID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return &NotFoundError{Resource: ResourceMenuItem, ID: id}
		}
	}
	return nil
}
