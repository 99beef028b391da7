package service

import (
	"context"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/pkg/apierror"
)

// OperationPage is one page of an operation listing.
type OperationPage struct {
	Operations []model.OperationEntry
	Total      int64
	Page       model.Page
}

// TotalPages returns the number of pages for the listing's total.
func (p *OperationPage) TotalPages() int {
	return p.Page.TotalPages(p.Total)
}

// OperationService lists the audit trail of stock operations.
type OperationService struct {
	store      repository.Store
	membership *Membership
}

// NewOperationService creates a new operation service.
func NewOperationService(store repository.Store, membership *Membership) *OperationService {
	return &OperationService{store: store, membership: membership}
}

// List returns one page of the inventory's operations. When the filter names
// an item, category or user, that entity must belong to the inventory.
func (s *OperationService) List(ctx context.Context, identity *model.Identity, filter model.OperationFilter, page model.Page) (*OperationPage, error) {
	if err := s.membership.Require(ctx, identity.UserID, filter.InventoryID); err != nil {
		return nil, err
	}

	if filter.ItemID > 0 {
		item, err := s.store.GetItem(ctx, filter.ItemID)
		if err != nil {
			return nil, mapStoreError(err, "Item does not exist in this inventory", "")
		}
		if item.InventoryID != filter.InventoryID {
			return nil, apierror.NotFound("Item does not exist in this inventory")
		}
	}

	if filter.CategoryID > 0 {
		if err := requireCategoryIn(ctx, s.store, filter.CategoryID, filter.InventoryID); err != nil {
			return nil, err
		}
	}

	if filter.UserID > 0 {
		ok, err := s.membership.IsMember(ctx, filter.UserID, filter.InventoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apierror.NotFound("User is not a member of this inventory")
		}
	}

	entries, total, err := s.store.ListOperations(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return &OperationPage{Operations: entries, Total: total, Page: page}, nil
}
