package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pooled connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&UserModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func ptr(s string) *string { return &s }

// seedUser inserts a user directly and returns it with its generated ID.
func seedUser(t *testing.T, repo *userSQLite, first, last, email string) entity.User {
	t.Helper()

	u := &entity.User{FirstName: ptr(first), LastName: ptr(last), Email: ptr(email)}
	require.NoError(t, repo.Create(context.Background(), u), "failed to seed user")
	return *u
}

func TestNewUserRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserSQLite_CreateAndFindByID(t *testing.T) {
	t.Run("created user is returned with the same fields", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		created := seedUser(t, repo, "Ada", "Lovelace", "ada@example.com")
		assert.NotZero(t, created.ID, "ID is not set")

		found, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created, *found)
	})

	t.Run("absent fields are stored as NULL", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		u := &entity.User{FirstName: ptr("Grace")}
		require.NoError(t, repo.Create(context.Background(), u))

		found, err := repo.FindByID(context.Background(), u.ID)

		require.NoError(t, err)
		assert.Equal(t, "Grace", *found.FirstName)
		assert.Nil(t, found.LastName)
		assert.Nil(t, found.Email)
	})

	t.Run("duplicate emails are allowed", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		a := seedUser(t, repo, "A", "One", "same@example.com")
		b := seedUser(t, repo, "B", "Two", "same@example.com")

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("nil user error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		err := repo.Create(context.Background(), nil)

		assert.Error(t, err, "should return error for nil user")
	})

	t.Run("ID not found error", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		found, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
		assert.Nil(t, found)
	})
}

func TestUserSQLite_List(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		users, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("returns all rows", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		want := []entity.User{
			seedUser(t, repo, "Ada", "Lovelace", "ada@example.com"),
			seedUser(t, repo, "Alan", "Turing", "alan@example.com"),
			seedUser(t, repo, "Grace", "Hopper", "grace@example.com"),
		}

		users, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.ElementsMatch(t, want, users)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.Migrator().DropTable(&UserModel{}))
		repo := NewUserRepository(db)

		_, err := repo.List(context.Background())

		assert.Error(t, err)
	})
}

func TestUserSQLite_UpdateColumn(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		value   string
		want    func(u entity.User) string
		wantErr error
	}{
		{name: "first name", column: usecase.ColumnFirstName, value: "Augusta", want: func(u entity.User) string { return *u.FirstName }},
		{name: "last name", column: usecase.ColumnLastName, value: "King", want: func(u entity.User) string { return *u.LastName }},
		{name: "email", column: usecase.ColumnEmail, value: "ada@analytical.engine", want: func(u entity.User) string { return *u.Email }},
		{name: "unknown column", column: "id", value: "7", wantErr: usecase.ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewUserRepository(setupTestDB(t))
			u := seedUser(t, repo, "Ada", "Lovelace", "ada@example.com")

			err := repo.UpdateColumn(context.Background(), u.ID, tt.column, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				found, findErr := repo.FindByID(context.Background(), u.ID)
				require.NoError(t, findErr)
				assert.Equal(t, u, *found, "row must be unchanged")
				return
			}
			require.NoError(t, err)
			found, err := repo.FindByID(context.Background(), u.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.value, tt.want(*found))
		})
	}
}

func TestUserSQLite_Replace(t *testing.T) {
	t.Run("overwrites all fields", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		u := seedUser(t, repo, "Ada", "Lovelace", "ada@example.com")

		err := repo.Replace(context.Background(), &entity.User{
			ID: u.ID, FirstName: ptr("Alan"), LastName: ptr("Turing"), Email: ptr("alan@example.com"),
		})
		require.NoError(t, err)

		found, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alan", *found.FirstName)
		assert.Equal(t, "Turing", *found.LastName)
		assert.Equal(t, "alan@example.com", *found.Email)
	})

	t.Run("absent fields become NULL", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		u := seedUser(t, repo, "Ada", "Lovelace", "ada@example.com")

		err := repo.Replace(context.Background(), &entity.User{ID: u.ID, FirstName: ptr("Ada")})
		require.NoError(t, err)

		found, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", *found.FirstName)
		assert.Nil(t, found.LastName)
		assert.Nil(t, found.Email)
	})
}

func TestUserSQLite_Delete(t *testing.T) {
	t.Run("deleted user is not found", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		u := seedUser(t, repo, "Ada", "Lovelace", "ada@example.com")

		require.NoError(t, repo.Delete(context.Background(), u.ID))

		_, err := repo.FindByID(context.Background(), u.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("deleting a missing user succeeds", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		assert.NoError(t, repo.Delete(context.Background(), 42))

		_, err := repo.FindByID(context.Background(), 42)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("other users are kept", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		a := seedUser(t, repo, "Ada", "Lovelace", "ada@example.com")
		b := seedUser(t, repo, "Alan", "Turing", "alan@example.com")

		require.NoError(t, repo.Delete(context.Background(), a.ID))

		users, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []entity.User{b}, users)
	})
}
