package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inventory-rest-api/internal/model"
)

const itemColumns = `id, name, category_id, inventory_id, quantity, created_at`

// CreateItem inserts an item with zero quantity. Names are unique per inventory.
func (s *SQLStore) CreateItem(ctx context.Context, inventoryID, categoryID int64, name string) (*model.Item, error) {
	item := &model.Item{
		Name:        name,
		CategoryID:  categoryID,
		InventoryID: inventoryID,
		CreatedAt:   s.now(),
	}

	id, err := s.insert(ctx, s.db,
		`INSERT INTO items (name, category_id, inventory_id, quantity, created_at) VALUES (?, ?, ?, 0, ?)`,
		item.Name, item.CategoryID, item.InventoryID, item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", translate(err))
	}

	item.ID = id
	return item, nil
}

// GetItem finds an item by id.
func (s *SQLStore) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	return s.getItem(ctx, s.db, id)
}

func (s *SQLStore) getItem(ctx context.Context, q querier, id int64) (*model.Item, error) {
	var item model.Item
	err := s.queryRow(ctx, q, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id).
		Scan(&item.ID, &item.Name, &item.CategoryID, &item.InventoryID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", translate(err))
	}
	return &item, nil
}

// ListItems lists the items of an inventory, optionally narrowed to one category.
func (s *SQLStore) ListItems(ctx context.Context, inventoryID, categoryID int64) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE inventory_id = ?`
	args := []any{inventoryID}
	if categoryID > 0 {
		query += ` AND category_id = ?`
		args = append(args, categoryID)
	}
	query += ` ORDER BY id`

	rows, err := s.query(ctx, s.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.CategoryID, &item.InventoryID, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteItem deletes an item and returns the row as it was.
func (s *SQLStore) DeleteItem(ctx context.Context, id int64) (*model.Item, error) {
	var deleted *model.Item
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		item, err := s.getItem(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := s.exec(ctx, tx, `DELETE FROM items WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		deleted = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
