package service

import (
	"context"

	"inventory-rest-api/internal/repository"
	"inventory-rest-api/pkg/apierror"
)

// Membership answers whether a user may act on an inventory.
type Membership struct {
	repo repository.MembershipRepository
}

// NewMembership creates a membership authority over the repository.
func NewMembership(repo repository.MembershipRepository) *Membership {
	return &Membership{repo: repo}
}

// IsMember reports whether the membership edge exists.
func (m *Membership) IsMember(ctx context.Context, userID, inventoryID int64) (bool, error) {
	return m.repo.IsMember(ctx, userID, inventoryID)
}

// Require returns a 403 error unless the user belongs to the inventory.
func (m *Membership) Require(ctx context.Context, userID, inventoryID int64) error {
	ok, err := m.repo.IsMember(ctx, userID, inventoryID)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.Forbidden("You are not a member of this inventory")
	}
	return nil
}
