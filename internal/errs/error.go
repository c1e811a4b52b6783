package errs

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrBadRequest    = errors.New("bad request")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnauthorized  = errors.New("unauthorized")
)

// keyError couples a sentinel with the localization key selected for
// the condition. The core never builds user-facing prose; the
// handler resolves the key through the translator.
type keyError struct {
	err error
	key string
}

func WithKey(err error, key string) error {
	return &keyError{err: err, key: key}
}

func (e *keyError) Error() string { return e.err.Error() + ": " + e.key }

func (e *keyError) Unwrap() error { return e.err }

// MessageKey extracts the localization key from an error chain, or
// "" when the error carries none.
func MessageKey(err error) string {
	var ke *keyError
	if errors.As(err, &ke) {
		return ke.key
	}
	return ""
}
