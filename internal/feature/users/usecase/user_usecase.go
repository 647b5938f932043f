package usecase

import (
	"context"
	"fmt"

	"user_backend/internal/feature/users/domain/entity"
)

// Column names accepted by UserRepository.UpdateColumn.
const (
	ColumnFirstName = "first_name"
	ColumnLastName  = "last_name"
	ColumnEmail     = "email"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// List returns every user in the store's natural order.
	List(ctx context.Context) ([]entity.User, error)

	// FindByID returns the user with the given ID or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Create inserts a user; the store assigns ID.
	Create(ctx context.Context, u *entity.User) error

	// UpdateColumn overwrites a single column of one row.
	UpdateColumn(ctx context.Context, id uint, column string, value string) error

	// Replace overwrites all three columns of one row, NULL for absent values.
	Replace(ctx context.Context, u *entity.User) error

	// Delete removes the row if present.
	Delete(ctx context.Context, id uint) error
}

// UserFields carries the three writable attributes; nil means absent.
type UserFields struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserUsecase provides the CRUD operations over users.
type UserUsecase struct {
	repo UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(r UserRepository) *UserUsecase {
	return &UserUsecase{repo: r}
}

// ListUsers returns all users.
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.repo.List(ctx)
}

// GetUser returns a single user or ErrUserNotFound.
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.repo.FindByID(ctx, id)
}

// CreateUser inserts the given fields as supplied. Missing fields are stored as NULL.
func (u *UserUsecase) CreateUser(ctx context.Context, f UserFields) (*entity.User, error) {
	user := &entity.User{FirstName: f.FirstName, LastName: f.LastName, Email: f.Email}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// PatchUser updates only the fields that are present and non-empty, one
// statement per field in first name, last name, email order.
//
// An empty string counts as absent and leaves the column untouched.
// The statements are not wrapped in a transaction: if a later one fails the
// row keeps the columns already written and the error is returned.
func (u *UserUsecase) PatchUser(ctx context.Context, id uint, f UserFields) error {
	updates := []struct {
		column string
		value  *string
	}{
		{ColumnFirstName, f.FirstName},
		{ColumnLastName, f.LastName},
		{ColumnEmail, f.Email},
	}
	for _, up := range updates {
		if up.value == nil || *up.value == "" {
			continue
		}
		if err := u.repo.UpdateColumn(ctx, id, up.column, *up.value); err != nil {
			return fmt.Errorf("failed to update %s: %w", up.column, err)
		}
	}
	return nil
}

// ReplaceUser overwrites all three fields unconditionally.
func (u *UserUsecase) ReplaceUser(ctx context.Context, id uint, f UserFields) error {
	return u.repo.Replace(ctx, &entity.User{
		ID:        id,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
	})
}

// DeleteUser removes the user; a missing row is not an error.
func (u *UserUsecase) DeleteUser(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
