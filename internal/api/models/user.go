package models

// User represents a user record in the store.
type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
}

// CreateUserRequest is the input schema of POST /api/users. The body may be
// form-encoded or JSON.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
}
