package domain

import (
	"database/sql"
)

// User is a demo login account. Password holds a bcrypt hash.
type User struct {
	ID       int64        `json:"id"`
	Email    string       `json:"email"`
	Name     string       `json:"name"`
	Password string       `json:"-"`
	Role     string       `json:"role"`
	Created  sql.NullTime `json:"created"`
	Enabled  sql.NullBool `json:"enabled"`
}
