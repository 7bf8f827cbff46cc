package httpapi

import (
	"errors"
	"fmt"
)

var (
	errBadRequest   = errors.New("bad request")
	errUnauthorized = errors.New("unauthorized")
)

// BadRequest builds an error that maps to 400 with msg as the body.
func BadRequest(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...), kind: errBadRequest}
}

type requestError struct {
	msg  string
	kind error
}

func (e *requestError) Error() string { return e.msg }
func (e *requestError) Unwrap() error { return e.kind }
