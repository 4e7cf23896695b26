package auth

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"required,oneof=user company admin"`

	// Company profile fields, required when role is "company".
	CompanyName        string `json:"companyName" validate:"required_if=Role company,max=200"`
	CompanyDescription string `json:"companyDescription" validate:"required_if=Role company"`
	CompanyWebsite     string `json:"companyWebsite" validate:"omitempty,url,max=200"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is the shape returned by both register and login. The `_id`
// key is kept for wire compatibility with the existing front end.
type authResponse struct {
	ID    int64  `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func newAuthResponse(res *Result) authResponse {
	return authResponse{
		ID:    res.User.ID,
		Name:  res.User.Name,
		Email: res.User.Email,
		Role:  res.User.Role,
		Token: res.Token,
	}
}
