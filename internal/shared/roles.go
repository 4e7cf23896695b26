package shared

// Account roles. A user holds exactly one role for its whole lifetime;
// no endpoint changes it after registration.
const (
	RoleUser    = "user"
	RoleCompany = "company"
	RoleAdmin   = "admin"
)
