package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// picks a log category for an unexpected error
func classifyError(err error) string {
	if err == nil {
		return CategoryUnknown
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return CategoryValidation
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return CategoryUpstream
	}

	var persistenceErr *PersistenceError
	if errors.As(err, &persistenceErr) {
		return CategoryDatabase
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return CategoryDatabase
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return CategoryNotFound
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTimeout
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return CategoryTimeout
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "dial") {
		return CategoryNetwork
	}

	return CategoryUnknown
}

// extracts the postgres error code, if any, for log context
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// turns a JSON binding failure into a ValidationError, naming the field on type mismatches
func InvalidBody(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Validation(fmt.Sprintf("%s must be %s", typeErr.Field, jsonKind(typeErr.Type)), typeErr.Field)
	}

	return Validation("invalid request body")
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	default:
		return "a valid value"
	}
}
