package repository

import (
	"context"
	"fmt"
)

// IsMember reports whether a membership edge exists between the user and the inventory.
func (s *SQLStore) IsMember(ctx context.Context, userID, inventoryID int64) (bool, error) {
	var count int
	err := s.queryRow(ctx, s.db,
		`SELECT COUNT(*) FROM inventory_members WHERE user_id = ? AND inventory_id = ?`,
		userID, inventoryID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return count > 0, nil
}

// AddMember links a user to an inventory.
func (s *SQLStore) AddMember(ctx context.Context, userID, inventoryID int64) error {
	_, err := s.exec(ctx, s.db,
		`INSERT INTO inventory_members (user_id, inventory_id) VALUES (?, ?)`,
		userID, inventoryID)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", translate(err))
	}
	return nil
}

// RemoveMember unlinks a user from an inventory.
func (s *SQLStore) RemoveMember(ctx context.Context, userID, inventoryID int64) error {
	result, err := s.exec(ctx, s.db,
		`DELETE FROM inventory_members WHERE user_id = ? AND inventory_id = ?`,
		userID, inventoryID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}
