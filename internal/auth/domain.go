package auth

import "time"

// User represents a registered account. The password hash is internal to
// this package and never serialized into a response.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyProfile carries the company fields supplied at registration when
// the account role is "company".
type CompanyProfile struct {
	Name        string
	Description string
	Website     *string
}

// Result is returned from a successful registration or login.
type Result struct {
	User  *User
	Token string
}
