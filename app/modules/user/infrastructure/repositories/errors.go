package userdb

import "errors"

// Sentinel errors for the user repository layer. They describe row presence,
// not business rules; the service decides what they mean to callers.
var (
	ErrNotFound       = errors.New("user record not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)
