package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventory-rest-api/internal/model"
)

// ApplyOperation changes an item's quantity and records the operation as one
// atomic unit. The sufficiency check for removals is part of the UPDATE itself,
// so concurrent removals cannot both succeed against the same stock.
func (s *SQLStore) ApplyOperation(ctx context.Context, op model.Operation) (*model.Operation, int64, error) {
	if !op.Type.Valid() {
		return nil, 0, fmt.Errorf("invalid operation type %q", op.Type)
	}
	if op.Quantity <= 0 || op.Quantity > model.MaxQuantity {
		return nil, 0, fmt.Errorf("invalid operation quantity %d", op.Quantity)
	}

	var (
		update string
		args   []any
	)
	switch op.Type {
	case model.OperationAdd:
		update = `UPDATE items SET quantity = quantity + ? WHERE id = ? AND inventory_id = ? AND quantity <= ?`
		args = []any{op.Quantity, op.ItemID, op.InventoryID, model.MaxQuantity - op.Quantity}
	case model.OperationRemove:
		update = `UPDATE items SET quantity = quantity - ? WHERE id = ? AND inventory_id = ? AND quantity >= ?`
		args = []any{op.Quantity, op.ItemID, op.InventoryID, op.Quantity}
	}

	op.CreatedAt = s.now()
	var updatedQuantity int64

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := s.exec(ctx, tx, update, args...)
		if err != nil {
			if isCheckViolation(err) {
				return ErrInsufficientStock
			}
			return fmt.Errorf("failed to update item quantity: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			// The item is not in this inventory, or the quantity bound failed.
			var current int64
			err := s.queryRow(ctx, tx,
				`SELECT quantity FROM items WHERE id = ? AND inventory_id = ?`,
				op.ItemID, op.InventoryID).Scan(&current)
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to read item quantity: %w", err)
			}
			if op.Type == model.OperationAdd {
				return ErrStockLimit
			}
			return ErrInsufficientStock
		}

		if err := s.queryRow(ctx, tx,
			`SELECT quantity FROM items WHERE id = ?`, op.ItemID).Scan(&updatedQuantity); err != nil {
			return fmt.Errorf("failed to read item quantity: %w", err)
		}

		id, err := s.insert(ctx, tx,
			`INSERT INTO operations (type, quantity, item_id, inventory_id, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			string(op.Type), op.Quantity, op.ItemID, op.InventoryID, op.UserID, op.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert operation: %w", translate(err))
		}
		op.ID = id
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &op, updatedQuantity, nil
}

// ListOperations returns one page of operations matching the filter, newest or
// oldest first, plus the total number of matching operations.
func (s *SQLStore) ListOperations(ctx context.Context, filter model.OperationFilter, page model.Page) ([]model.OperationEntry, int64, error) {
	conds := []string{"o.inventory_id = ?"}
	args := []any{filter.InventoryID}
	if filter.ItemID > 0 {
		conds = append(conds, "o.item_id = ?")
		args = append(args, filter.ItemID)
	}
	if filter.UserID > 0 {
		conds = append(conds, "o.user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.CategoryID > 0 {
		conds = append(conds, "i.category_id = ?")
		args = append(args, filter.CategoryID)
	}
	where := strings.Join(conds, " AND ")

	var total int64
	err := s.queryRow(ctx, s.db, `
		SELECT COUNT(*)
		FROM operations o
		JOIN items i ON i.id = o.item_id
		WHERE `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count operations: %w", err)
	}
	if int64(page.Offset()) >= total {
		return []model.OperationEntry{}, total, nil
	}

	direction := "DESC"
	if page.Order == model.SortAsc {
		direction = "ASC"
	}

	rows, err := s.query(ctx, s.db, `
		SELECT o.id, o.type, o.quantity, o.item_id, o.inventory_id, o.user_id, o.created_at, u.email, i.name
		FROM operations o
		JOIN items i ON i.id = o.item_id
		JOIN users u ON u.id = o.user_id
		WHERE `+where+`
		ORDER BY o.created_at `+direction+`, o.id `+direction+`
		LIMIT ? OFFSET ?`, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	entries := []model.OperationEntry{}
	for rows.Next() {
		var e model.OperationEntry
		var opType string
		if err := rows.Scan(&e.ID, &opType, &e.Quantity, &e.ItemID, &e.InventoryID, &e.UserID,
			&e.CreatedAt, &e.UserEmail, &e.ItemName); err != nil {
			return nil, 0, fmt.Errorf("failed to scan operation: %w", err)
		}
		e.Type = model.OperationType(opType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
