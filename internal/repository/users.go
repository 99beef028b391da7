package repository

import (
	"context"
	"fmt"

	"inventory-rest-api/internal/model"
)

// CreateUser inserts a new user.
func (s *SQLStore) CreateUser(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	user := &model.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    s.now(),
	}

	id, err := s.insert(ctx, s.db,
		`INSERT INTO users (email, password_hash, role, created_at) VALUES (?, ?, ?, ?)`,
		user.Email, user.PasswordHash, string(user.Role), user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", translate(err))
	}

	user.ID = id
	return user, nil
}

// GetUserByEmail finds a user by email.
func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUser(ctx, `SELECT id, email, password_hash, role, created_at FROM users WHERE email = ?`, email)
}

// GetUserByID finds a user by id.
func (s *SQLStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return s.getUser(ctx, `SELECT id, email, password_hash, role, created_at FROM users WHERE id = ?`, id)
}

func (s *SQLStore) getUser(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	var role string
	err := s.queryRow(ctx, s.db, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &role, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", translate(err))
	}
	user.Role = model.Role(role)
	return &user, nil
}

// ListUsersByInventory returns the members of an inventory ordered by id.
func (s *SQLStore) ListUsersByInventory(ctx context.Context, inventoryID int64) ([]model.UserSummary, error) {
	rows, err := s.query(ctx, s.db, `
		SELECT u.id, u.email, u.role
		FROM users u
		JOIN inventory_members m ON m.user_id = u.id
		WHERE m.inventory_id = ?
		ORDER BY u.id`, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.UserSummary{}
	for rows.Next() {
		var u model.UserSummary
		var role string
		if err := rows.Scan(&u.ID, &u.Email, &role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = model.Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}
