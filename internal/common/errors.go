package common

import "errors"

var (
	// ErrInvalidInput marks client faults: missing or malformed fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateIdentity is returned when a username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already exists")
	// ErrNotFound is returned on a lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when a password digest does not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrOrderPlacementFailed wraps any failure inside the atomic order write.
	ErrOrderPlacementFailed = errors.New("order placement failed")
)

// IsClientFault reports whether err should surface as a 400-class response.
func IsClientFault(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDuplicateIdentity) ||
		errors.Is(err, ErrInvalidCredentials)
}
