package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FindByUsername returns nil without an error when no user matches.
func (a *Accessor) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User

	query := `SELECT id, username, password FROM users WHERE username = $1`
	row := a.db.QueryRowContext(ctx, query, username)
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &u, nil
}

// InsertUser stores a new user. The password must already be hashed;
// the id is assigned by the store.
func (a *Accessor) InsertUser(ctx context.Context, username, hashedPassword string) (*User, error) {
	u := User{Username: username, Password: hashedPassword}
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`
	row := a.db.QueryRowContext(ctx, query, username, hashedPassword)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return &u, nil
}
