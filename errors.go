package leimysql

import (
	"errors"
	"fmt"
)

// Sentinel errors for leimysql.
// These errors can be checked using errors.Is().
var (
	// ErrNoRows is returned when SelectOne matches no row.
	ErrNoRows = errors.New("leimysql: no rows in result set")

	// ErrInvalidConfig is returned when connection configuration fails
	// validation. Configuration errors are fatal at construction time and
	// are never retried.
	ErrInvalidConfig = errors.New("leimysql: invalid configuration")
)

// WrapError annotates an error with the operation that produced it.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("leimysql: %s: %w", op, err)
}

// QueryError wraps a query failure with the statement text and arguments
// that produced it.
type QueryError struct {
	Err   error
	Query string
	Args  []any
}

func (e *QueryError) Error() string {
	return "leimysql: query failed: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError with context.
func NewQueryError(err error, query string, args []any) *QueryError {
	return &QueryError{
		Err:   err,
		Query: query,
		Args:  args,
	}
}

// ConfigError describes a single invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "leimysql: invalid configuration field " + e.Field + ": " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
