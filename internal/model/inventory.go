package model

import "time"

// Inventory is a tenant scope holding categories, items, operations and members.
type Inventory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// InventorySummary is an inventory with aggregate counts, as listed for a member.
type InventorySummary struct {
	Inventory
	MemberCount   int64 `json:"memberCount"`
	CategoryCount int64 `json:"categoryCount"`
	ItemCount     int64 `json:"itemCount"`
}

// InventoryDetail is the full view of one inventory.
type InventoryDetail struct {
	Inventory
	Users            []UserSummary       `json:"users"`
	Categories       []CategoryWithCount `json:"categories"`
	Items            []Item              `json:"items"`
	RecentOperations []OperationEntry    `json:"recentOperations"`
}

// Category groups items within one inventory.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	InventoryID int64     `json:"inventoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryWithCount is a category together with the number of items it holds.
type CategoryWithCount struct {
	Category
	ItemCount int64 `json:"itemCount"`
}

// Item is a stock-keeping unit. Quantity only changes through operations.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CategoryID  int64     `json:"categoryId"`
	InventoryID int64     `json:"inventoryId"`
	Quantity    int64     `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
}
