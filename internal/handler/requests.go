package handler

import "strings"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=40"`
	Password string `json:"password" validate:"required,min=6,max=40"`
	Role     string `json:"role" validate:"required"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToUpper(strings.TrimSpace(r.Role))
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=40"`
	Password string `json:"password" validate:"required,max=40"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// CreateInventoryRequest is the body of POST /inventories.
type CreateInventoryRequest struct {
	InventoryName string `json:"inventoryName" validate:"required,min=5,max=50"`
}

func (r *CreateInventoryRequest) Normalize() {
	r.InventoryName = strings.TrimSpace(r.InventoryName)
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,min=4,max=30"`
	InventoryID  int64  `json:"inventoryId" validate:"required,gt=0"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.CategoryName = strings.TrimSpace(r.CategoryName)
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	ItemName    string `json:"itemName" validate:"required,min=1,max=30"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
	InventoryID int64  `json:"inventoryId" validate:"required,gt=0"`
}

func (r *CreateItemRequest) Normalize() {
	r.ItemName = strings.TrimSpace(r.ItemName)
}

// CreateOperationRequest is the body of POST /operations.
type CreateOperationRequest struct {
	OperationType string `json:"operationType" validate:"required,oneof=ADD REMOVE"`
	Quantity      int64  `json:"quantity" validate:"required,gt=0,lte=1000000000"`
	InventoryID   int64  `json:"inventoryId" validate:"required,gt=0"`
	ItemID        int64  `json:"itemId" validate:"required,gt=0"`
}

func (r *CreateOperationRequest) Normalize() {
	r.OperationType = strings.ToUpper(strings.TrimSpace(r.OperationType))
}

// RelationRequest is the body of PATCH /users/inventories.
type RelationRequest struct {
	UserEmail   string `json:"userEmail" validate:"required,email,max=40"`
	InventoryID int64  `json:"inventoryId" validate:"required,gt=0"`
	Action      string `json:"action" validate:"required,oneof=connect disconnect"`
}

func (r *RelationRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
}
