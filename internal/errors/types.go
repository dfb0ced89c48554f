package errors

import (
	"fmt"
	"strings"
)

// request input was missing or out of range; always maps to 400
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// an external API call failed; StatusCode is the upstream HTTP status when known
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// a database operation failed; Op names what was being attempted
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("database: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// named value checked by Require
type Field struct {
	Name  string
	Value string
}

// error categories used when logging unexpected failures
const (
	CategoryDatabase   = "database"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryUpstream   = "upstream"
	CategoryNotFound   = "not_found"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// builds a validation error for the given fields
func Validation(message string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Message: message}
}

// builds an upstream error
func Upstream(provider string, status int, message string, err error) *UpstreamError {
	return &UpstreamError{
		Provider:   provider,
		StatusCode: status,
		Message:    message,
		Err:        err,
	}
}

// wraps err as a persistence failure; returns nil for a nil err
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}

	return &PersistenceError{Op: op, Err: err}
}

// returns a ValidationError naming every field whose value is blank
func Require(fields ...Field) error {
	var missing []string

	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	verb := "is"
	if len(missing) > 1 {
		verb = "are"
	}

	return Validation(fmt.Sprintf("%s %s required", JoinFields(missing), verb), missing...)
}

// joins names as "a", "a and b" or "a, b, and c"
func JoinFields(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
