package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
// Handlers map the not-found errors to 404 and everything else to 400.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrExportNotFound   = errors.New("export not found")
	ErrValidationFailed = errors.New("validation failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, fmt.Sprintf(format, args...))
}
