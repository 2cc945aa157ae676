package database

import (
	"errors"
	"fmt"
)

// Errors returned by the SurrealDB layer. Check them with errors.Is.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid ID format")
	ErrInvalidInput    = errors.New("invalid input data")
	ErrAlreadyExists   = errors.New("record already exists")
	ErrQueryFailed     = errors.New("query execution failed")
	ErrMultipleResults = errors.New("multiple results found when one was expected")
	ErrNotConnected    = errors.New("database not connected")
)

// DBError carries the operation, query and parameters that produced a
// driver or layer error.
type DBError struct {
	err     error
	context string
	query   string
	params  map[string]any
}

// NewDBError creates a DBError describing the operation being performed.
func NewDBError(err error, context string) *DBError {
	return &DBError{
		err:     err,
		context: context,
	}
}

// WithQuery attaches the query text.
func (e *DBError) WithQuery(query string) *DBError {
	e.query = query
	return e
}

// WithParams attaches the query parameters.
func (e *DBError) WithParams(params map[string]any) *DBError {
	e.params = params
	return e
}

func (e *DBError) Error() string {
	msg := e.context
	if e.query != "" {
		msg = fmt.Sprintf("%s\nQuery: %s", msg, e.query)
	}
	if len(e.params) > 0 {
		msg = fmt.Sprintf("%s\nParams: %+v", msg, e.params)
	}
	if e.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

func (e *DBError) Unwrap() error {
	return e.err
}

// Is matches the package sentinels against the wrapped error.
func (e *DBError) Is(target error) bool {
	if target == nil {
		return e == nil
	}

	switch target {
	case ErrNotFound, ErrInvalidID, ErrInvalidInput, ErrAlreadyExists, ErrQueryFailed, ErrMultipleResults, ErrNotConnected:
		return errors.Is(e.err, target)
	}

	return false
}

// WrapError prefixes err with context. An existing DBError keeps its query
// and parameters and gains the new context in front of its own.
func WrapError(err error, context string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		if dbErr.context != "" {
			context = fmt.Sprintf("%s: %s", context, dbErr.context)
		}
		dbErr.context = context
		return dbErr
	}

	return NewDBError(err, context)
}
