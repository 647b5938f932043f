// Package dto defines data transfer objects for the users HTTP API.
package dto

import "user_backend/internal/feature/users/domain/entity"

// UserRequest is the body of POST, PATCH and PUT /users requests.
// It binds from form or JSON bodies; a field missing from the body stays nil.
type UserRequest struct {
	FirstName *string `form:"first_name" json:"first_name"`
	LastName  *string `form:"last_name" json:"last_name"`
	Email     *string `form:"email" json:"email"`
}

// UserResponse is a user in JSON listings. NULL columns are emitted as null.
type UserResponse struct {
	ID        uint    `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// UserView is a user prepared for the HTML templates.
type UserView struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
}

// NewUserResponse converts an entity to its JSON representation.
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// NewUserView converts an entity for template rendering.
func NewUserView(u entity.User) UserView {
	first, last, email := u.Fields()
	return UserView{ID: u.ID, FirstName: first, LastName: last, Email: email}
}
