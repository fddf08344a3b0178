package gateway

import "errors"

// Error codes for gateway failures.
const (
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeBadRequest    = "bad_request"
	ErrCodeConflict      = "conflict"
	ErrCodeNotFound      = "not_found"
	ErrCodeTokenExpired  = "token_expired"
	ErrCodeTokenMismatch = "token_mismatch"
	ErrCodeNotConnected  = "not_connected"
	ErrCodeTransport     = "transport"
	ErrCodeServer        = "server_error"
)

var (
	ErrNotConnected = NewError(ErrCodeNotConnected, "not connected")
	ErrInvalidCID   = NewError(ErrCodeBadRequest, "invalid channel id")
)

// Error is a gateway failure carrying a code and a human-readable message.
// Message may be empty when the server gave no explanation.
type Error struct {
	Code    string
	Message string
	Err     error
}

// NewError constructs an Error without a cause.
func NewError(code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap constructs an Error around a lower-level cause.
func Wrap(code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors with the same code.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// MessageOf returns the human-readable message of err, or "" when it has none.
// Gateway errors contribute only their Message so that a silent server
// failure stays distinguishable from a described one.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return err.Error()
}
