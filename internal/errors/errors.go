package errors

import "errors"

var (
	// ErrUserNotFound is returned when a user id matches no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrBusNotFound is returned when a bus id matches no row.
	ErrBusNotFound = errors.New("bus not found")
	// ErrDuplicateEmail is returned when another user already holds the email.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateBusNumber is returned when another bus already holds the number.
	ErrDuplicateBusNumber = errors.New("bus number already exists")
)

// ErrorResponse is the JSON error body returned to clients. Details carries
// the underlying store message on 500s and is omitted otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
