package service

import (
	"context"
	"log/slog"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/pkg/apierror"
)

// RelationAction is a change to the membership edge set.
type RelationAction string

const (
	ActionConnect    RelationAction = "connect"
	ActionDisconnect RelationAction = "disconnect"
)

// RelationService connects users to inventories and disconnects them.
type RelationService struct {
	users      repository.UserRepository
	members    repository.MembershipRepository
	membership *Membership
	logger     *slog.Logger
}

// NewRelationService creates a new relation service.
func NewRelationService(users repository.UserRepository, members repository.MembershipRepository, membership *Membership, logger *slog.Logger) *RelationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RelationService{users: users, members: members, membership: membership, logger: logger}
}

// Modify applies action to the edge between the user with email and the
// inventory. The caller must belong to the inventory.
func (s *RelationService) Modify(ctx context.Context, identity *model.Identity, email string, inventoryID int64, action RelationAction) (*model.UserSummary, error) {
	if action != ActionConnect && action != ActionDisconnect {
		return nil, apierror.BadRequest("Invalid action")
	}

	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, mapStoreError(err, "User does not exist", "")
	}

	switch action {
	case ActionConnect:
		err = mapStoreError(s.members.AddMember(ctx, user.ID, inventoryID),
			"Inventory does not exist", "User is already a member of this inventory")
	case ActionDisconnect:
		err = mapStoreError(s.members.RemoveMember(ctx, user.ID, inventoryID),
			"User is not a member of this inventory", "")
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("membership changed",
		slog.String("action", string(action)),
		slog.Int64("user_id", user.ID),
		slog.Int64("inventory_id", inventoryID),
		slog.Int64("by_user_id", identity.UserID),
	)

	summary := user.Summary()
	return &summary, nil
}
