package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inventory-rest-api/internal/model"
)

// CreateInventory inserts an inventory and its first membership edge in one transaction.
func (s *SQLStore) CreateInventory(ctx context.Context, name string, ownerID int64) (*model.Inventory, error) {
	inv := &model.Inventory{Name: name, CreatedAt: s.now()}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		id, err := s.insert(ctx, tx,
			`INSERT INTO inventories (name, created_at) VALUES (?, ?)`, inv.Name, inv.CreatedAt)
		if err != nil {
			return translate(err)
		}
		inv.ID = id

		if _, err := s.exec(ctx, tx,
			`INSERT INTO inventory_members (user_id, inventory_id) VALUES (?, ?)`, ownerID, id); err != nil {
			return translate(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	return inv, nil
}

// GetInventory finds an inventory by id.
func (s *SQLStore) GetInventory(ctx context.Context, id int64) (*model.Inventory, error) {
	var inv model.Inventory
	err := s.queryRow(ctx, s.db,
		`SELECT id, name, created_at FROM inventories WHERE id = ?`, id).
		Scan(&inv.ID, &inv.Name, &inv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", translate(err))
	}
	return &inv, nil
}

// ListInventoriesForUser lists the inventories a user belongs to, with aggregate counts.
func (s *SQLStore) ListInventoriesForUser(ctx context.Context, userID int64) ([]model.InventorySummary, error) {
	rows, err := s.query(ctx, s.db, `
		SELECT i.id, i.name, i.created_at,
			(SELECT COUNT(*) FROM inventory_members mm WHERE mm.inventory_id = i.id),
			(SELECT COUNT(*) FROM categories c WHERE c.inventory_id = i.id),
			(SELECT COUNT(*) FROM items it WHERE it.inventory_id = i.id)
		FROM inventories i
		JOIN inventory_members m ON m.inventory_id = i.id
		WHERE m.user_id = ?
		ORDER BY i.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventories: %w", err)
	}
	defer rows.Close()

	inventories := []model.InventorySummary{}
	for rows.Next() {
		var inv model.InventorySummary
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.CreatedAt,
			&inv.MemberCount, &inv.CategoryCount, &inv.ItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		inventories = append(inventories, inv)
	}
	return inventories, rows.Err()
}
