package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContent      = errors.New("empty email content")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtraction        = errors.New("extraction failed")

	ErrInvalidInput     = errors.New("invalid input")
	ErrMalformedRequest = errors.New("malformed request")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")

	ErrGeneratorNotConfigured = errors.New("completion client not configured")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
