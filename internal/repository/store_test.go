package repository_test

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/internal/repository/repotest"
)

type fixture struct {
	store     *repository.SQLStore
	user      *model.User
	inventory *model.Inventory
	category  *model.Category
	item      *model.Item
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	store := repotest.New(t)

	user, err := store.CreateUser(ctx, "admin@example.com", "hash", model.RoleAdmin)
	require.NoError(t, err)
	inv, err := store.CreateInventory(ctx, "Main warehouse", user.ID)
	require.NoError(t, err)
	cat, err := store.CreateCategory(ctx, inv.ID, "Tools")
	require.NoError(t, err)
	item, err := store.CreateItem(ctx, inv.ID, cat.ID, "Hammer")
	require.NoError(t, err)

	return fixture{store: store, user: user, inventory: inv, category: cat, item: item}
}

func (f fixture) apply(t *testing.T, opType model.OperationType, qty int64) (*model.Operation, int64, error) {
	t.Helper()
	return f.store.ApplyOperation(context.Background(), model.Operation{
		Type:        opType,
		Quantity:    qty,
		ItemID:      f.item.ID,
		InventoryID: f.inventory.ID,
		UserID:      f.user.ID,
	})
}

func (f fixture) quantity(t *testing.T) int64 {
	t.Helper()
	item, err := f.store.GetItem(context.Background(), f.item.ID)
	require.NoError(t, err)
	return item.Quantity
}

func (f fixture) operationCount(t *testing.T) int64 {
	t.Helper()
	_, total, err := f.store.ListOperations(context.Background(),
		model.OperationFilter{InventoryID: f.inventory.ID},
		model.Page{Number: 1, Limit: 1, Order: model.SortDesc})
	require.NoError(t, err)
	return total
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := repotest.New(t)

	_, err := store.CreateUser(ctx, "a@example.com", "hash", model.RoleEmployee)
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, "a@example.com", "hash", model.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	store := repotest.New(t)

	_, err := store.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateInventory_CreatorIsMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.store.IsMember(ctx, f.user.ID, f.inventory.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.store.CreateInventory(ctx, "Main warehouse", f.user.ID)
	assert.ErrorIs(t, err, repository.ErrConflict)

	invs, err := f.store.ListInventoriesForUser(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, int64(1), invs[0].MemberCount)
	assert.Equal(t, int64(1), invs[0].CategoryCount)
	assert.Equal(t, int64(1), invs[0].ItemCount)
}

func TestMembership_AddRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.store.CreateUser(ctx, "emp@example.com", "hash", model.RoleEmployee)
	require.NoError(t, err)

	ok, err := f.store.IsMember(ctx, other.ID, f.inventory.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.store.AddMember(ctx, other.ID, f.inventory.ID))
	assert.ErrorIs(t, f.store.AddMember(ctx, other.ID, f.inventory.ID), repository.ErrConflict)

	users, err := f.store.ListUsersByInventory(ctx, f.inventory.ID)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, f.store.RemoveMember(ctx, other.ID, f.inventory.ID))
	assert.ErrorIs(t, f.store.RemoveMember(ctx, other.ID, f.inventory.ID), repository.ErrNotFound)
}

func TestCategoryNames_UniquePerInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.CreateCategory(ctx, f.inventory.ID, "Tools")
	assert.ErrorIs(t, err, repository.ErrConflict)

	other, err := f.store.CreateInventory(ctx, "Second warehouse", f.user.ID)
	require.NoError(t, err)
	_, err = f.store.CreateCategory(ctx, other.ID, "Tools")
	assert.NoError(t, err)
}

func TestItemNames_UniquePerInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.CreateItem(ctx, f.inventory.ID, f.category.ID, "Hammer")
	assert.ErrorIs(t, err, repository.ErrConflict)

	_, err = f.store.CreateItem(ctx, f.inventory.ID, 9999, "Saw")
	assert.ErrorIs(t, err, repository.ErrNotFound, "unknown category should fail the foreign key")
}

func TestListItems_FilterByCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.store.CreateCategory(ctx, f.inventory.ID, "Paint")
	require.NoError(t, err)
	_, err = f.store.CreateItem(ctx, f.inventory.ID, other.ID, "Brush")
	require.NoError(t, err)

	all, err := f.store.ListItems(ctx, f.inventory.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tools, err := f.store.ListItems(ctx, f.inventory.ID, f.category.ID)
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "Hammer", tools[0].Name)

	cats, err := f.store.ListCategories(ctx, f.inventory.ID)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, int64(1), cats[0].ItemCount)
}

func TestDeleteCategory_CascadesItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.apply(t, model.OperationAdd, 3)
	require.NoError(t, err)

	deleted, err := f.store.DeleteCategory(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tools", deleted.Name)

	_, err = f.store.GetItem(ctx, f.item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = f.store.DeleteCategory(ctx, f.category.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteItem_ReturnsSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.apply(t, model.OperationAdd, 4)
	require.NoError(t, err)

	deleted, err := f.store.DeleteItem(ctx, f.item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted.Quantity)

	_, err = f.store.DeleteItem(ctx, f.item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApplyOperation_AddThenRemove(t *testing.T) {
	f := newFixture(t)

	op, qty, err := f.apply(t, model.OperationAdd, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), qty)
	assert.NotZero(t, op.ID)
	assert.False(t, op.CreatedAt.IsZero())

	_, qty, err = f.apply(t, model.OperationRemove, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), qty)
	assert.Equal(t, int64(6), f.quantity(t))
	assert.Equal(t, int64(2), f.operationCount(t))
}

func TestApplyOperation_InsufficientStockLeavesNoTrace(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.apply(t, model.OperationAdd, 2)
	require.NoError(t, err)

	_, _, err = f.apply(t, model.OperationRemove, 3)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	assert.Equal(t, int64(2), f.quantity(t))
	assert.Equal(t, int64(1), f.operationCount(t))
}

func TestApplyOperation_StockLimit(t *testing.T) {
	f := newFixture(t)

	_, updated, err := f.apply(t, model.OperationAdd, model.MaxQuantity)
	require.NoError(t, err)
	assert.Equal(t, model.MaxQuantity, updated)

	_, _, err = f.apply(t, model.OperationAdd, 1)
	assert.ErrorIs(t, err, repository.ErrStockLimit)

	_, _, err = f.apply(t, model.OperationAdd, model.MaxQuantity+1)
	assert.Error(t, err)

	assert.Equal(t, model.MaxQuantity, f.quantity(t))
	assert.Equal(t, int64(1), f.operationCount(t))

	_, updated, err = f.apply(t, model.OperationRemove, model.MaxQuantity)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestApplyOperation_ItemOutsideInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.store.CreateInventory(ctx, "Second warehouse", f.user.ID)
	require.NoError(t, err)

	_, _, err = f.store.ApplyOperation(ctx, model.Operation{
		Type: model.OperationAdd, Quantity: 1, ItemID: f.item.ID, InventoryID: other.ID, UserID: f.user.ID,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, int64(0), f.quantity(t))
}

func TestApplyOperation_FailureBetweenWritesRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.apply(t, model.OperationAdd, 5)
	require.NoError(t, err)

	// Abort the operation insert after the quantity update has already run.
	_, err = f.store.DB().ExecContext(ctx, `
		CREATE TRIGGER fail_operation_insert BEFORE INSERT ON operations
		WHEN NEW.quantity = 13
		BEGIN SELECT RAISE(ABORT, 'injected failure'); END`)
	require.NoError(t, err)

	_, _, err = f.apply(t, model.OperationAdd, 13)
	require.Error(t, err)
	_, _, err = f.apply(t, model.OperationRemove, 13)
	require.Error(t, err)

	assert.Equal(t, int64(5), f.quantity(t), "quantity change must roll back with the failed insert")
	assert.Equal(t, int64(1), f.operationCount(t))
}

func TestApplyOperation_ConcurrentRemovalsNeverOversell(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.apply(t, model.OperationAdd, 10)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := f.apply(t, model.OperationRemove, 1)
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, int64(0), f.quantity(t))
	assert.Equal(t, int64(11), f.operationCount(t))
}

func TestListOperations_Pagination(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, _, err := f.apply(t, model.OperationAdd, int64(i+1))
		require.NoError(t, err)
	}

	filter := model.OperationFilter{InventoryID: f.inventory.ID}

	page3 := model.Page{Number: 3, Limit: 10, Order: model.SortDesc}
	entries, total, err := f.store.ListOperations(ctx, filter, page3)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, entries, 5)
	assert.Equal(t, 3, page3.TotalPages(total))
	assert.Equal(t, int64(5), entries[0].Quantity, "descending order puts the oldest last")
	assert.Equal(t, "admin@example.com", entries[0].UserEmail)
	assert.Equal(t, "Hammer", entries[0].ItemName)

	entries, _, err = f.store.ListOperations(ctx, filter, model.Page{Number: 4, Limit: 10, Order: model.SortDesc})
	require.NoError(t, err)
	assert.Empty(t, entries)

	farPage := model.Page{Number: math.MaxInt, Limit: 10, Order: model.SortDesc}
	assert.Equal(t, math.MaxInt, farPage.Offset())
	entries, total, err = f.store.ListOperations(ctx, filter, farPage)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, int64(25), total)

	entries, _, err = f.store.ListOperations(ctx, filter, model.Page{Number: 1, Limit: 3, Order: model.SortAsc})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(1), entries[0].Quantity)
}

func TestListOperations_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	paint, err := f.store.CreateCategory(ctx, f.inventory.ID, "Paint")
	require.NoError(t, err)
	brush, err := f.store.CreateItem(ctx, f.inventory.ID, paint.ID, "Brush")
	require.NoError(t, err)
	emp, err := f.store.CreateUser(ctx, "emp@example.com", "hash", model.RoleEmployee)
	require.NoError(t, err)

	_, _, err = f.apply(t, model.OperationAdd, 1)
	require.NoError(t, err)
	_, _, err = f.store.ApplyOperation(ctx, model.Operation{
		Type: model.OperationAdd, Quantity: 2, ItemID: brush.ID, InventoryID: f.inventory.ID, UserID: emp.ID,
	})
	require.NoError(t, err)

	page := model.Page{Number: 1, Limit: 10, Order: model.SortDesc}
	cases := []struct {
		filter model.OperationFilter
		want   int64
	}{
		{model.OperationFilter{InventoryID: f.inventory.ID}, 2},
		{model.OperationFilter{InventoryID: f.inventory.ID, ItemID: brush.ID}, 1},
		{model.OperationFilter{InventoryID: f.inventory.ID, UserID: emp.ID}, 1},
		{model.OperationFilter{InventoryID: f.inventory.ID, CategoryID: f.category.ID}, 1},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, total, err := f.store.ListOperations(ctx, tc.filter, page)
			require.NoError(t, err)
			assert.Equal(t, tc.want, total)
		})
	}
}
