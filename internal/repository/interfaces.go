package repository

import (
	"context"

	"inventory-rest-api/internal/model"
)

// UserRepository defines user data access methods.
type UserRepository interface {
	// CreateUser inserts a user. Returns ErrConflict when the email is taken.
	CreateUser(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error)

	// GetUserByEmail returns ErrNotFound when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID returns ErrNotFound when the user does not exist.
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// ListUsersByInventory returns the members of an inventory.
	ListUsersByInventory(ctx context.Context, inventoryID int64) ([]model.UserSummary, error)
}

// MembershipRepository defines access to the user/inventory membership edges.
type MembershipRepository interface {
	IsMember(ctx context.Context, userID, inventoryID int64) (bool, error)

	// AddMember returns ErrConflict when the edge already exists.
	AddMember(ctx context.Context, userID, inventoryID int64) error

	// RemoveMember returns ErrNotFound when the edge does not exist.
	RemoveMember(ctx context.Context, userID, inventoryID int64) error
}

// InventoryRepository defines inventory data access methods.
type InventoryRepository interface {
	// CreateInventory inserts the inventory and makes ownerID its first member, atomically.
	CreateInventory(ctx context.Context, name string, ownerID int64) (*model.Inventory, error)
	GetInventory(ctx context.Context, id int64) (*model.Inventory, error)
	ListInventoriesForUser(ctx context.Context, userID int64) ([]model.InventorySummary, error)
}

// CategoryRepository defines category data access methods.
type CategoryRepository interface {
	// CreateCategory returns ErrConflict when the name exists in the same inventory.
	CreateCategory(ctx context.Context, inventoryID int64, name string) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context, inventoryID int64) ([]model.CategoryWithCount, error)
	DeleteCategory(ctx context.Context, id int64) (*model.Category, error)
}

// ItemRepository defines item data access methods.
type ItemRepository interface {
	// CreateItem returns ErrConflict when the name exists in the same inventory.
	CreateItem(ctx context.Context, inventoryID, categoryID int64, name string) (*model.Item, error)
	GetItem(ctx context.Context, id int64) (*model.Item, error)

	// ListItems lists the items of an inventory, narrowed to one category when categoryID > 0.
	ListItems(ctx context.Context, inventoryID, categoryID int64) ([]model.Item, error)
	DeleteItem(ctx context.Context, id int64) (*model.Item, error)
}

// OperationRepository defines stock operation data access methods.
type OperationRepository interface {
	// ApplyOperation changes the item quantity and appends the operation record
	// in one transaction. Returns ErrNotFound when the item is not in the
	// inventory and ErrInsufficientStock when a removal exceeds the stock.
	ApplyOperation(ctx context.Context, op model.Operation) (*model.Operation, int64, error)

	// ListOperations returns one page of operations and the total count for the filter.
	ListOperations(ctx context.Context, filter model.OperationFilter, page model.Page) ([]model.OperationEntry, int64, error)
}

// Store aggregates every repository over a single relational store.
type Store interface {
	UserRepository
	MembershipRepository
	InventoryRepository
	CategoryRepository
	ItemRepository
	OperationRepository

	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
