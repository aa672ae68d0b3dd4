package model

// User is a row of the users table.
//
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}

// NewUser is the data needed to insert a user.
type NewUser struct {
	Name     string
	Email    string
	Password string
}
