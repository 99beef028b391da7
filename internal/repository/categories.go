package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inventory-rest-api/internal/model"
)

// CreateCategory inserts a category. Names are unique per inventory.
func (s *SQLStore) CreateCategory(ctx context.Context, inventoryID int64, name string) (*model.Category, error) {
	cat := &model.Category{Name: name, InventoryID: inventoryID, CreatedAt: s.now()}

	id, err := s.insert(ctx, s.db,
		`INSERT INTO categories (name, inventory_id, created_at) VALUES (?, ?, ?)`,
		cat.Name, cat.InventoryID, cat.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", translate(err))
	}

	cat.ID = id
	return cat, nil
}

// GetCategory finds a category by id.
func (s *SQLStore) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return s.getCategory(ctx, s.db, id)
}

func (s *SQLStore) getCategory(ctx context.Context, q querier, id int64) (*model.Category, error) {
	var cat model.Category
	err := s.queryRow(ctx, q,
		`SELECT id, name, inventory_id, created_at FROM categories WHERE id = ?`, id).
		Scan(&cat.ID, &cat.Name, &cat.InventoryID, &cat.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", translate(err))
	}
	return &cat, nil
}

// ListCategories lists the categories of an inventory with their item counts.
func (s *SQLStore) ListCategories(ctx context.Context, inventoryID int64) ([]model.CategoryWithCount, error) {
	rows, err := s.query(ctx, s.db, `
		SELECT c.id, c.name, c.inventory_id, c.created_at,
			(SELECT COUNT(*) FROM items i WHERE i.category_id = c.id)
		FROM categories c
		WHERE c.inventory_id = ?
		ORDER BY c.id`, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.CategoryWithCount{}
	for rows.Next() {
		var c model.CategoryWithCount
		if err := rows.Scan(&c.ID, &c.Name, &c.InventoryID, &c.CreatedAt, &c.ItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteCategory deletes a category and returns the row as it was.
// Items in the category (and their operations) go with it.
func (s *SQLStore) DeleteCategory(ctx context.Context, id int64) (*model.Category, error) {
	var deleted *model.Category
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		cat, err := s.getCategory(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := s.exec(ctx, tx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		deleted = cat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
