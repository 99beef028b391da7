package service

import (
	"context"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/pkg/apierror"
)

// recentOperationsLimit is how many operations an inventory detail includes.
const recentOperationsLimit = 10

// InventoryService handles inventory business logic.
type InventoryService struct {
	store      repository.Store
	membership *Membership
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(store repository.Store, membership *Membership) *InventoryService {
	return &InventoryService{store: store, membership: membership}
}

// Create makes a new inventory with the caller as its first member.
func (s *InventoryService) Create(ctx context.Context, identity *model.Identity, name string) (*model.Inventory, error) {
	inv, err := s.store.CreateInventory(ctx, name, identity.UserID)
	if err != nil {
		return nil, mapStoreError(err, "User does not exist", "Inventory already exists")
	}
	return inv, nil
}

// List returns the inventories the caller belongs to.
func (s *InventoryService) List(ctx context.Context, identity *model.Identity) ([]model.InventorySummary, error) {
	return s.store.ListInventoriesForUser(ctx, identity.UserID)
}

// Get returns the full view of one inventory.
func (s *InventoryService) Get(ctx context.Context, identity *model.Identity, inventoryID int64) (*model.InventoryDetail, error) {
	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		return nil, err
	}

	inv, err := s.store.GetInventory(ctx, inventoryID)
	if err != nil {
		return nil, mapStoreError(err, "Inventory does not exist", "")
	}

	detail := &model.InventoryDetail{Inventory: *inv}
	if detail.Users, err = s.store.ListUsersByInventory(ctx, inventoryID); err != nil {
		return nil, err
	}
	if detail.Categories, err = s.store.ListCategories(ctx, inventoryID); err != nil {
		return nil, err
	}
	if detail.Items, err = s.store.ListItems(ctx, inventoryID, 0); err != nil {
		return nil, err
	}
	detail.RecentOperations, _, err = s.store.ListOperations(ctx,
		model.OperationFilter{InventoryID: inventoryID},
		model.Page{Number: 1, Limit: recentOperationsLimit, Order: model.SortDesc})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ListItems returns the items of an inventory, narrowed to one category when
// categoryID > 0. The category must belong to the inventory.
func (s *InventoryService) ListItems(ctx context.Context, identity *model.Identity, inventoryID, categoryID int64) ([]model.Item, error) {
	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		return nil, err
	}

	if categoryID > 0 {
		if err := requireCategoryIn(ctx, s.store, categoryID, inventoryID); err != nil {
			return nil, err
		}
	}

	return s.store.ListItems(ctx, inventoryID, categoryID)
}

// ListUsers returns the members of an inventory.
func (s *InventoryService) ListUsers(ctx context.Context, identity *model.Identity, inventoryID int64) ([]model.UserSummary, error) {
	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		return nil, err
	}
	return s.store.ListUsersByInventory(ctx, inventoryID)
}

// requireCategoryIn returns 404 unless the category exists within the inventory.
func requireCategoryIn(ctx context.Context, categories repository.CategoryRepository, categoryID, inventoryID int64) error {
	const msg = "Category does not exist in this inventory"
	cat, err := categories.GetCategory(ctx, categoryID)
	if err != nil {
		return mapStoreError(err, msg, "")
	}
	if cat.InventoryID != inventoryID {
		return apierror.NotFound(msg)
	}
	return nil
}
