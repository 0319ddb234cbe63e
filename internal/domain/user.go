package domain

import "time"

// User is an authentication principal. Password carries the plaintext only on
// inbound requests and is never persisted; PasswordHash is what the store
// reads and writes.
type User struct {
	UserID       int64     `json:"userId"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Password     string    `json:"password,omitempty"`
	PasswordHash string    `json:"-"`
	ActiveStatus bool      `json:"activeStatus"`
	DateAdded    time.Time `json:"dateAdded"`
	DateUpdated  time.Time `json:"dateUpdated"`
}

func (u *User) Validate() error {
	if err := requireLowercase("username", u.Username); err != nil {
		return err
	}
	if err := requireLength("username", u.Username, 3, 60); err != nil {
		return err
	}
	return requirePattern("username", u.Username, UsernamePattern)
}
