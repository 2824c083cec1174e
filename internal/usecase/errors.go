package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrUnauthorized          = crerr.New("unauthorized")
	ErrDataIntegrity         = crerr.New("data integrity violation")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
