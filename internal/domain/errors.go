package domain

import "errors"

// Error kinds. Module errors wrap one of these so transports can map them
// without knowing every module.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NewNotFound builds an error that matches ErrNotFound.
func NewNotFound(msg string) error {
	return &kindError{msg: msg, kind: ErrNotFound}
}

// NewConflict builds an error that matches ErrConflict.
func NewConflict(msg string) error {
	return &kindError{msg: msg, kind: ErrConflict}
}
