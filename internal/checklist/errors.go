package checklist

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSkipPattern = errors.New("invalid skipDescriptionRegex")
	ErrInvalidSkipFlags   = errors.New("invalid skipDescriptionRegexFlags")
)

// ConfigError reports configuration that cannot be evaluated.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
