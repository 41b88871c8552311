package models

import "github.com/uptrace/bun"

// User is a registered account. The username is the primary key and never
// changes after registration. Password holds the bcrypt hash and is
// excluded from JSON output.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	Username  string `bun:"username,pk" json:"username"`
	Password  string `bun:"password,notnull" json:"-"`
	FirstName string `bun:"first_name,notnull" json:"firstName"`
	LastName  string `bun:"last_name,notnull" json:"lastName"`
	Email     string `bun:"email,notnull" json:"email"`
}
