package company

import "time"

// Company is a profile owned by exactly one company-role user. IsVerified
// flips false to true once, by admin action, and never reverts.
type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     *string   `json:"website,omitempty"`
	UserID      int64     `json:"-"`
	IsVerified  bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Owner identifies the user account a company belongs to.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WithOwner pairs a company with its owning account for the admin listing.
type WithOwner struct {
	Company
	Owner Owner `json:"user"`
}
