// Package adapters provides repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

const selectUsers = "SELECT id, first_name, last_name, email FROM users"

// updatable lists the columns UpdateColumn may touch. The column name is
// interpolated into the statement, so it must come from this set.
var updatable = map[string]string{
	usecase.ColumnFirstName: "UPDATE users SET first_name = ? WHERE id = ?",
	usecase.ColumnLastName:  "UPDATE users SET last_name = ? WHERE id = ?",
	usecase.ColumnEmail:     "UPDATE users SET email = ? WHERE id = ?",
}

// userSQLite implements UserRepository with parameterized SQL through GORM.
type userSQLite struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userSQLite)(nil)

// NewUserRepository creates a repository bound to the shared connection.
func NewUserRepository(db *gorm.DB) *userSQLite {
	return &userSQLite{db: db}
}

// List returns every row in the store's natural order.
func (r *userSQLite) List(ctx context.Context) ([]entity.User, error) {
	var rows []UserModel
	if err := r.db.WithContext(ctx).Raw(selectUsers).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// FindByID returns the matching row or usecase.ErrUserNotFound.
func (r *userSQLite) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var rows []UserModel
	if err := r.db.WithContext(ctx).
		Raw(selectUsers+" WHERE id = ? LIMIT 1", id).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, usecase.ErrUserNotFound
	}
	u := rows[0].ToEntity()
	return &u, nil
}

// Create inserts the user and copies the generated ID back onto u.
func (r *userSQLite) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	model := UserModelFromEntity(u)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = model.ID
	return nil
}

// UpdateColumn overwrites one column of the row with the given ID.
func (r *userSQLite) UpdateColumn(ctx context.Context, id uint, column string, value string) error {
	stmt, ok := updatable[column]
	if !ok {
		return fmt.Errorf("%w: %q", usecase.ErrUnknownColumn, column)
	}
	if err := r.db.WithContext(ctx).Exec(stmt, value, id).Error; err != nil {
		return fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return nil
}

// Replace overwrites first name, last name and email in a single statement.
func (r *userSQLite) Replace(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Exec(
		"UPDATE users SET first_name = ?, last_name = ?, email = ? WHERE id = ?",
		u.FirstName, u.LastName, u.Email, u.ID,
	).Error; err != nil {
		return fmt.Errorf("failed to replace user %d: %w", u.ID, err)
	}
	return nil
}

// Delete removes the row; deleting a missing ID is not an error.
func (r *userSQLite) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM users WHERE id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
