package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

const usersTable = "users"

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserWithEmail returns the user registered with email.
// A missing user yields an error wrapping pgx.ErrNoRows.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	stmt := `SELECT id, name, email, password FROM users WHERE email = $1`

	var u model.User
	err := r.db.QueryRow(ctx, stmt, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		return nil, wrapErr(usersTable, "get user by email", err)
	}
	return &u, nil
}

// GetUserWithID returns the user with the given id.
func (r *UserRepository) GetUserWithID(ctx context.Context, id int) (*model.User, error) {
	stmt := `SELECT id, name, email, password FROM users WHERE id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, stmt, id).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		return nil, wrapErr(usersTable, "get user by id", err)
	}
	return &u, nil
}

// AddUser inserts a user and returns the stored row. The password must
// already be hashed.
func (r *UserRepository) AddUser(ctx context.Context, in model.NewUser) (*model.User, error) {
	stmt := `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id, name, email, password`

	var u model.User
	err := r.db.QueryRow(ctx, stmt, in.Name, in.Email, in.Password).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		return nil, wrapErr(usersTable, "add user", err)
	}
	return &u, nil
}
