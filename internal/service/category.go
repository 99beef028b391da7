package service

import (
	"context"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
)

// CategoryService handles category business logic.
type CategoryService struct {
	categories repository.CategoryRepository
	membership *Membership
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository, membership *Membership) *CategoryService {
	return &CategoryService{categories: categories, membership: membership}
}

// List returns the categories of an inventory with their item counts.
func (s *CategoryService) List(ctx context.Context, identity *model.Identity, inventoryID int64) ([]model.CategoryWithCount, error) {
	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		return nil, err
	}
	return s.categories.ListCategories(ctx, inventoryID)
}

// Create adds a category to an inventory.
func (s *CategoryService) Create(ctx context.Context, identity *model.Identity, inventoryID int64, name string) (*model.Category, error) {
	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		return nil, err
	}

	cat, err := s.categories.CreateCategory(ctx, inventoryID, name)
	if err != nil {
		return nil, mapStoreError(err, "Inventory does not exist", "Category already exists in this inventory")
	}
	return cat, nil
}

// Delete removes a category, its items and their operations. The category is
// loaded first to find the inventory it belongs to.
func (s *CategoryService) Delete(ctx context.Context, identity *model.Identity, categoryID int64) (*model.Category, error) {
	cat, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, mapStoreError(err, "Category does not exist", "")
	}

	if err := s.membership.Require(ctx, identity.UserID, cat.InventoryID); err != nil {
		return nil, err
	}

	deleted, err := s.categories.DeleteCategory(ctx, categoryID)
	if err != nil {
		return nil, mapStoreError(err, "Category does not exist", "")
	}
	return deleted, nil
}
