// Package di provides dependency injection factories for creating application components.
package di

import (
	"gorm.io/gorm"

	"user_backend/internal/feature/users/adapters"
	"user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/feature/users/usecase"
)

// Models lists the GORM models bootstrapped when RUN_MIGRATIONS is enabled.
func Models() []any {
	return []any{&adapters.UserModel{}}
}

// NewUserHandler wires the users repository, usecase and handler onto db.
func NewUserHandler(db *gorm.DB) *handler.UserHandler {
	repo := adapters.NewUserRepository(db)
	return handler.NewUserHandler(usecase.NewUserUsecase(repo))
}
