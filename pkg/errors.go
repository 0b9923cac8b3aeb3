package pkg

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected before any write happens.
var ErrValidation = errors.New("validation failed")

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
