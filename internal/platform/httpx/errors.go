package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer. The error text doubles as the
// user-facing message in the JSON body, so the wording is part of the API
// contract. Credential failures deliberately share one generic message;
// the unverified-company failure is deliberately specific.
var (
	ErrInvalidRequest     = errors.New("Invalid request data")
	ErrUserExists         = errors.New("User already exists")
	ErrAlreadyApplied     = errors.New("You have already applied for this job")
	ErrNotAuthorized      = errors.New("Not authorized")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrCompanyNotVerified = errors.New("Company not verified by admin")
	ErrForbidden          = errors.New("Forbidden")
	ErrCompanyNotFound    = errors.New("Company not found")
	ErrJobNotFound        = errors.New("Job not found")
)

var errorStatus = []struct {
	err    error
	status int
}{
	{ErrInvalidRequest, http.StatusBadRequest},
	{ErrUserExists, http.StatusBadRequest},
	{ErrAlreadyApplied, http.StatusBadRequest},
	{ErrNotAuthorized, http.StatusUnauthorized},
	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrCompanyNotVerified, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrCompanyNotFound, http.StatusNotFound},
	{ErrJobNotFound, http.StatusNotFound},
}

// RespondError maps a domain error to an HTTP status and JSON message.
// Unrecognized errors collapse to a bare 500 so internals never leak.
func RespondError(w http.ResponseWriter, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			Message(w, e.status, e.err.Error())
			return
		}
	}
	Message(w, http.StatusInternalServerError, "Internal server error")
}
