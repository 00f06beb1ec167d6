package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("operation not allowed in current state")
	ErrInsufficientStock  = errors.New("equipment not available")
	ErrAlreadyReturned    = errors.New("already returned")
	ErrDuplicateIdentity  = errors.New("duplicate identity")
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type ErrorResponse struct {
	Message string `json:"message"`
}
