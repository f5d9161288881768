package services

import (
	"errors"
	"orderup/internal/models"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLines is an in-memory LineItemRepository that records every write.
type fakeLines struct {
	rows   []models.LineItem
	nextID uint
	writes int
	err    error
}

func newFakeLines(rows ...models.LineItem) *fakeLines {
	f := &fakeLines{nextID: 100}
	f.rows = append(f.rows, rows...)
	return f
}

func (f *fakeLines) List() ([]models.LineItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.LineItem(nil), f.rows...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLines) Create(itemID uint, count int) error {
	f.writes++
	f.nextID++
	f.rows = append(f.rows, models.LineItem{ID: f.nextID, ItemID: itemID, Count: count})
	return nil
}

func (f *fakeLines) UpdateCount(lineID uint, count int) error {
	f.writes++
	for i := range f.rows {
		if f.rows[i].ID == lineID {
			f.rows[i].Count = count
			return nil
		}
	}
	return errors.New("no such line")
}

func (f *fakeLines) Delete(lineIDs ...uint) error {
	f.writes++
	drop := make(map[uint]bool, len(lineIDs))
	for _, id := range lineIDs {
		drop[id] = true
	}
	kept := f.rows[:0]
	for _, row := range f.rows {
		if !drop[row.ID] {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeLines) DeleteAll() error {
	f.writes++
	f.rows = nil
	return nil
}

// state returns menu item id -> count.
func (f *fakeLines) state() map[uint]int {
	out := make(map[uint]int, len(f.rows))
	for _, row := range f.rows {
		out[row.ItemID] += row.Count
	}
	return out
}

// fakeMenu knows a fixed set of menu item ids.
type fakeMenu struct {
	ids map[uint]bool
	err error
}

func newFakeMenu(ids ...uint) *fakeMenu {
	m := &fakeMenu{ids: make(map[uint]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

func (m *fakeMenu) Create(item *models.MenuItem) error { return errors.New("not implemented") }

func (m *fakeMenu) GetByID(id uint) (*models.MenuItem, error) {
	if !m.ids[id] {
		return nil, errors.New("not found")
	}
	return &models.MenuItem{ItemID: id}, nil
}

func (m *fakeMenu) GetByIDs(ids []uint) ([]models.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var items []models.MenuItem
	for _, id := range ids {
		if m.ids[id] {
			items = append(items, models.MenuItem{ItemID: id})
		}
	}
	return items, nil
}

func (m *fakeMenu) GetAll() ([]models.MenuItem, error) { return nil, nil }
func (m *fakeMenu) Delete(id uint) error { return errors.New("not implemented") }
func (m *fakeMenu) CountReferences(id uint) (int64, error) { return 0, nil }

func TestReconcileUpdatesInPlaceAndPrunesUnmentioned(t *testing.T) {
	lines := newFakeLines(
		models.LineItem{ID: 1, ItemID: 5, Count: 1},
		models.LineItem{ID: 2, ItemID: 7, Count: 2},
	)

	result, err := Reconcile(lines, newFakeMenu(5, 7), []DesiredItem{{ItemID: 5, Count: 3}})
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Updated: 1, Deleted: 1}, result)
	require.Len(t, lines.rows, 1)
	assert.Equal(t, models.LineItem{ID: 1, ItemID: 5, Count: 3}, lines.rows[0], "line must be updated, not recreated")
}

func TestReconcileCreatesMissingLines(t *testing.T) {
	lines := newFakeLines()

	result, err := Reconcile(lines, newFakeMenu(1, 2), []DesiredItem{{ItemID: 1, Count: 2}, {ItemID: 2, Count: 1}})
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Created: 2}, result)
	assert.Equal(t, map[uint]int{1: 2, 2: 1}, lines.state())
}

func TestReconcileIsIdempotent(t *testing.T) {
	lines := newFakeLines(
		models.LineItem{ID: 1, ItemID: 1, Count: 4},
		models.LineItem{ID: 2, ItemID: 3, Count: 1},
	)
	menu := newFakeMenu(1, 2, 3)
	desired := []DesiredItem{{ItemID: 1, Count: 2}, {ItemID: 2, Count: 5}}

	first, err := Reconcile(lines, menu, desired)
	require.NoError(t, err)
	assert.NotZero(t, first.Writes())
	after := lines.state()
	writes := lines.writes

	second, err := Reconcile(lines, menu, desired)
	require.NoError(t, err)
	assert.Zero(t, second.Writes())
	assert.Equal(t, writes, lines.writes, "second sync must not touch storage")
	assert.Equal(t, after, lines.state())
}

func TestReconcileZeroCountPrunes(t *testing.T) {
	lines := newFakeLines(
		models.LineItem{ID: 1, ItemID: 1, Count: 2},
		models.LineItem{ID: 2, ItemID: 2, Count: 2},
	)

	result, err := Reconcile(lines, newFakeMenu(1, 2, 3), []DesiredItem{
		{ItemID: 1, Count: 0},
		{ItemID: 2, Count: 2},
		{ItemID: 3, Count: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Deleted: 1}, result)
	assert.Equal(t, map[uint]int{2: 2}, lines.state(), "zero counts are neither kept nor created")
}

func TestReconcileEmptyDesiredStateClearsContainer(t *testing.T) {
	lines := newFakeLines(
		models.LineItem{ID: 1, ItemID: 1, Count: 2},
		models.LineItem{ID: 2, ItemID: 2, Count: 1},
	)

	result, err := Reconcile(lines, newFakeMenu(1, 2), nil)
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Deleted: 2}, result)
	assert.Empty(t, lines.rows)

	result, err = Reconcile(lines, newFakeMenu(1, 2), nil)
	require.NoError(t, err)
	assert.Zero(t, result.Writes())
}

func TestReconcileDuplicateEntriesLastWins(t *testing.T) {
	lines := newFakeLines()

	_, err := Reconcile(lines, newFakeMenu(9), []DesiredItem{
		{ItemID: 9, Count: 1},
		{ItemID: 9, Count: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{9: 4}, lines.state())
	assert.Len(t, lines.rows, 1)

	_, err = Reconcile(lines, newFakeMenu(9), []DesiredItem{
		{ItemID: 9, Count: 4},
		{ItemID: 9, Count: 0},
	})
	require.NoError(t, err)
	assert.Empty(t, lines.rows, "a trailing zero removes the item")
}

func TestReconcileEntryOrderIsIrrelevant(t *testing.T) {
	start := []models.LineItem{
		{ID: 1, ItemID: 1, Count: 1},
		{ID: 2, ItemID: 4, Count: 1},
	}
	desired := []DesiredItem{{ItemID: 1, Count: 3}, {ItemID: 2, Count: 2}, {ItemID: 3, Count: 1}}
	reversed := []DesiredItem{desired[2], desired[1], desired[0]}

	a := newFakeLines(start...)
	b := newFakeLines(start...)
	_, err := Reconcile(a, newFakeMenu(1, 2, 3, 4), desired)
	require.NoError(t, err)
	_, err = Reconcile(b, newFakeMenu(1, 2, 3, 4), reversed)
	require.NoError(t, err)

	assert.Equal(t, a.state(), b.state())
	assert.Equal(t, map[uint]int{1: 3, 2: 2, 3: 1}, a.state())
}

func TestReconcileCollapsesStoredDuplicates(t *testing.T) {
	lines := newFakeLines(
		models.LineItem{ID: 1, ItemID: 6, Count: 1},
		models.LineItem{ID: 2, ItemID: 6, Count: 5},
	)

	result, err := Reconcile(lines, newFakeMenu(6), []DesiredItem{{ItemID: 6, Count: 2}})
	require.NoError(t, err)

	assert.Equal(t, SyncResult{Updated: 1, Deleted: 1}, result)
	require.Len(t, lines.rows, 1)
	assert.Equal(t, models.LineItem{ID: 1, ItemID: 6, Count: 2}, lines.rows[0])
}

func TestReconcileUnknownMenuItemFailsBeforeWriting(t *testing.T) {
	lines := newFakeLines(models.LineItem{ID: 1, ItemID: 1, Count: 1})

	_, err := Reconcile(lines, newFakeMenu(1), []DesiredItem{
		{ItemID: 1, Count: 5},
		{ItemID: 42, Count: 1},
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ResourceMenuItem, notFound.Resource)
	assert.Equal(t, uint(42), notFound.ID)
	assert.Zero(t, lines.writes)
	assert.Equal(t, map[uint]int{1: 1}, lines.state())
}

func TestReconcileRejectsNegativeCount(t *testing.T) {
	lines := newFakeLines()

	_, err := Reconcile(lines, newFakeMenu(1), []DesiredItem{{ItemID: 1, Count: -1}})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "count", validation.Field)
	assert.Zero(t, lines.writes)
}

func TestReconcileWrapsStorageFailures(t *testing.T) {
	boom := errors.New("connection reset")

	lines := newFakeLines()
	lines.err = boom
	_, err := Reconcile(lines, newFakeMenu(1), []DesiredItem{{ItemID: 1, Count: 1}})
	var storage *StorageError
	require.ErrorAs(t, err, &storage)
	assert.ErrorIs(t, err, boom)

	menu := newFakeMenu(1)
	menu.err = boom
	_, err = Reconcile(newFakeLines(), menu, []DesiredItem{{ItemID: 1, Count: 1}})
	require.ErrorAs(t, err, &storage)
	assert.Equal(t, "resolve menu items", storage.Op)
}

func TestReconcilePruningProperty(t *testing.T) {
	cases := map[string]struct {
		start   []models.LineItem
		desired []DesiredItem
	}{
		"mixed": {
			start:   []models.LineItem{{ID: 1, ItemID: 1, Count: 2}, {ID: 2, ItemID: 2, Count: 0}, {ID: 3, ItemID: 3, Count: 7}},
			desired: []DesiredItem{{ItemID: 2, Count: 0}, {ItemID: 3, Count: 1}, {ItemID: 4, Count: 2}},
		},
		"stored zero revived": {
			start:   []models.LineItem{{ID: 1, ItemID: 1, Count: 0}},
			desired: []DesiredItem{{ItemID: 1, Count: 3}},
		},
		"everything zero": {
			start:   []models.LineItem{{ID: 1, ItemID: 1, Count: 1}, {ID: 2, ItemID: 2, Count: 1}},
			desired: []DesiredItem{{ItemID: 1, Count: 0}, {ItemID: 2, Count: 0}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			lines := newFakeLines(tc.start...)
			_, err := Reconcile(lines, newFakeMenu(1, 2, 3, 4), tc.desired)
			require.NoError(t, err)

			mentioned := make(map[uint]bool)
			for _, d := range tc.desired {
				mentioned[d.ItemID] = true
			}
			for _, row := range lines.rows {
				assert.Positive(t, row.Count)
				assert.True(t, mentioned[row.ItemID], "item %d not in desired state", row.ItemID)
			}
		})
	}
}
