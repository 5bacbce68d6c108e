package domain

import "fmt"

// ConfigurationError reports a cleaner configuration that cannot be used:
// an unknown imputation strategy or a constant fill value that does not
// coerce to the column family it fills. Construction fails fast with this
// error instead of silently falling back to a default.
type ConfigurationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Field, e.Message)
}

// NewConfigurationError creates a configuration error for the given field.
func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: message}
}
