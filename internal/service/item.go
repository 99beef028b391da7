package service

import (
	"context"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
)

// ItemService handles item business logic.
type ItemService struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	membership *Membership
}

// NewItemService creates a new item service.
func NewItemService(items repository.ItemRepository, categories repository.CategoryRepository, membership *Membership) *ItemService {
	return &ItemService{items: items, categories: categories, membership: membership}
}

// Create adds an item with zero stock to a category of the inventory.
func (s *ItemService) Create(ctx context.Context, identity *model.Identity, inventoryID, categoryID int64, name string) (*model.Item, error) {
	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		return nil, err
	}

	if err := requireCategoryIn(ctx, s.categories, categoryID, inventoryID); err != nil {
		return nil, err
	}

	item, err := s.items.CreateItem(ctx, inventoryID, categoryID, name)
	if err != nil {
		return nil, mapStoreError(err, "Category does not exist in this inventory", "Item already exists in this inventory")
	}
	return item, nil
}

// Delete removes an item and its operations.
func (s *ItemService) Delete(ctx context.Context, identity *model.Identity, itemID int64) (*model.Item, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, mapStoreError(err, "Item does not exist", "")
	}

	if err := s.membership.Require(ctx, identity.UserID, item.InventoryID); err != nil {
		return nil, err
	}

	deleted, err := s.items.DeleteItem(ctx, itemID)
	if err != nil {
		return nil, mapStoreError(err, "Item does not exist", "")
	}
	return deleted, nil
}
