package service

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned by Authenticate for an unknown
	// username or a wrong password, deliberately without distinguishing
	// the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// IsValidation reports whether err is a field validation failure that
// should re-render the form instead of producing a server error.
func IsValidation(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}
