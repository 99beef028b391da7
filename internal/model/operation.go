package model

import (
	"math"
	"time"
)

// OperationType is the direction of a stock change.
type OperationType string

const (
	OperationAdd    OperationType = "ADD"
	OperationRemove OperationType = "REMOVE"
)

// MaxQuantity bounds an item's stock level and a single operation's quantity.
const MaxQuantity int64 = 1_000_000_000

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	return t == OperationAdd || t == OperationRemove
}

// Operation is an append-only audit record of one committed stock change.
type Operation struct {
	ID          int64         `json:"id"`
	Type        OperationType `json:"type"`
	Quantity    int64         `json:"quantity"`
	ItemID      int64         `json:"itemId"`
	InventoryID int64         `json:"inventoryId"`
	UserID      int64         `json:"userId"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// OperationEntry is an operation as listed, with the actor's email and the item name.
type OperationEntry struct {
	Operation
	UserEmail string `json:"userEmail"`
	ItemName  string `json:"itemName"`
}

// OperationResult is returned when a stock change commits.
type OperationResult struct {
	Operation       Operation `json:"newOperation"`
	UpdatedQuantity int64     `json:"updatedQuantity"`
}

// OperationFilter scopes an operation listing. InventoryID is required; at most
// one of the remaining fields is expected to be set.
type OperationFilter struct {
	InventoryID int64
	ItemID      int64
	UserID      int64
	CategoryID  int64
}

// SortOrder orders listings by creation time.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Page selects one page of a listing.
type Page struct {
	Number int
	Limit  int
	Order  SortOrder
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// TotalPages returns ceil(total/limit).
func (p Page) TotalPages(total int64) int {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
