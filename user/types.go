package user

import "errors"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	// Password holds the bcrypt hash, never the plaintext. Excluded from JSON.
	Password string `json:"-"`
}

func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	if u.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
