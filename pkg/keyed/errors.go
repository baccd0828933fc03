package keyed

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrConfiguration = errors.New("invalid key extractor configuration")
	ErrExtraction    = errors.New("key extraction failed")
)

// ConfigurationError is returned when a key extractor cannot be
// constructed for a value type.
type ConfigurationError struct {
	Type     reflect.Type
	Property string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: property %q of %s: %s", ErrConfiguration, e.Property, e.Type, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ExtractionError wraps a failure of the key derivation for
// a dedicated value.
type ExtractionError struct {
	Value any
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s for %T: %s", ErrExtraction, e.Value, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

func extractionError(v any, cause error) error {
	var ee *ExtractionError
	if errors.As(cause, &ee) {
		return cause
	}
	return &ExtractionError{Value: v, Cause: cause}
}
