package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Source error codes
const (
	ErrorCodeFileNotFound        = "FILE_NOT_FOUND"
	ErrorCodeFileUnreadable      = "FILE_UNREADABLE"
	ErrorCodeInvalidJSON         = "INVALID_JSON"
	ErrorCodeInvalidConfig       = "INVALID_CONFIG"
	ErrorCodeInvalidQuery        = "INVALID_QUERY"
	ErrorCodeQueryTimeout        = "QUERY_TIMEOUT"
	ErrorCodeResultTooLarge      = "RESULT_TOO_LARGE"
	ErrorCodeDatabaseUnavailable = "DATABASE_UNAVAILABLE"
	ErrorCodeInternalError       = "INTERNAL_ERROR"
)

// Process exit codes for source errors
const (
	ExitCodeInternalError = 1
	ExitCodeInputError    = 2
	ExitCodeDatabaseError = 3
)

// SourceError is returned by loaders when the employee list cannot be produced
type SourceError struct {
	Code    string
	Message string
	Detail  string
}

func (e *SourceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewSourceError creates a new source error
func NewSourceError(code, message, detail string) *SourceError {
	return &SourceError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

// SQLSTATE to source error code mapping
var sqlStateToCode = map[string]string{
	// Bad table or column → INVALID_QUERY
	"42601": ErrorCodeInvalidQuery, // syntax_error
	"42703": ErrorCodeInvalidQuery, // undefined_column
	"42P01": ErrorCodeInvalidQuery, // undefined_table
	"42804": ErrorCodeInvalidQuery, // datatype_mismatch
	"42501": ErrorCodeInvalidQuery, // insufficient_privilege

	// Query cancellation → QUERY_TIMEOUT
	"57014": ErrorCodeQueryTimeout, // query_canceled

	// Resource limits → DATABASE_UNAVAILABLE
	"53000": ErrorCodeDatabaseUnavailable, // insufficient_resources
	"53100": ErrorCodeDatabaseUnavailable, // disk_full
	"53200": ErrorCodeDatabaseUnavailable, // out_of_memory
	"53300": ErrorCodeDatabaseUnavailable, // too_many_connections

	// Connection errors → DATABASE_UNAVAILABLE
	"08000": ErrorCodeDatabaseUnavailable, // connection_exception
	"08003": ErrorCodeDatabaseUnavailable, // connection_does_not_exist
	"08006": ErrorCodeDatabaseUnavailable, // connection_failure
	"08001": ErrorCodeDatabaseUnavailable, // sqlclient_unable_to_establish_sqlconnection
	"08004": ErrorCodeDatabaseUnavailable, // sqlserver_rejected_establishment_of_sqlconnection
	"28P01": ErrorCodeDatabaseUnavailable, // invalid_password
	"3D000": ErrorCodeDatabaseUnavailable, // invalid_catalog_name
}

// TranslateError converts a database error into a SourceError
func TranslateError(err error) *SourceError {
	if err == nil {
		return nil
	}

	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return srcErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewSourceError(
			ErrorCodeQueryTimeout,
			"Employee query timeout",
			fmt.Sprintf("Loading employees exceeded %v", QueryTimeout),
		)
	}

	if errors.Is(err, context.Canceled) {
		return NewSourceError(
			ErrorCodeQueryTimeout,
			"Employee query canceled",
			"Loading employees was canceled before completion",
		)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return translatePQError(pqErr)
	}

	return NewSourceError(
		ErrorCodeInternalError,
		"An internal error occurred",
		err.Error(),
	)
}

func translatePQError(pqErr *pq.Error) *SourceError {
	code, found := sqlStateToCode[string(pqErr.Code)]
	if !found {
		code = ErrorCodeInternalError
	}

	return NewSourceError(code, buildErrorMessage(code, pqErr), buildErrorDetail(pqErr))
}

func buildErrorMessage(code string, pqErr *pq.Error) string {
	switch code {
	case ErrorCodeInvalidQuery:
		return "Invalid employee query"
	case ErrorCodeQueryTimeout:
		return "Employee query timeout"
	case ErrorCodeDatabaseUnavailable:
		return "Database is unavailable"
	default:
		if pqErr.Message != "" {
			return pqErr.Message
		}
		return "An error occurred"
	}
}

func buildErrorDetail(pqErr *pq.Error) string {
	detail := fmt.Sprintf("PostgreSQL error: %s", pqErr.Message)

	if pqErr.Detail != "" {
		detail += fmt.Sprintf(" | Detail: %s", pqErr.Detail)
	}

	if pqErr.Hint != "" {
		detail += fmt.Sprintf(" | Hint: %s", pqErr.Hint)
	}

	return detail
}

// ExitCode returns the process exit code for a source error code
func ExitCode(code string) int {
	switch code {
	case ErrorCodeFileNotFound, ErrorCodeFileUnreadable, ErrorCodeInvalidJSON, ErrorCodeInvalidConfig:
		return ExitCodeInputError
	case ErrorCodeInvalidQuery, ErrorCodeQueryTimeout, ErrorCodeResultTooLarge, ErrorCodeDatabaseUnavailable:
		return ExitCodeDatabaseError
	default:
		return ExitCodeInternalError
	}
}
