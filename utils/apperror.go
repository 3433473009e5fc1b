package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrorKind classifies failures at the service boundary so controllers can
// map them to HTTP responses without inspecting driver errors.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidationFailed
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindRateLimited
)

// MySQL error numbers translated to kinds.
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrFKConstraint   = 1452
)

// AppError carries an ErrorKind, a client-safe message and the wrapped cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError wrapping an optional cause.
func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the ErrorKind from err, defaulting to KindInternal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an ErrorKind to its HTTP status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// TranslateDBError maps persistence errors to AppErrors. Constraint
// violations are matched by the stable MySQL error number; anything
// unrecognized becomes Internal.
func TranslateDBError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewAppError(KindNotFound, message, err)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return NewAppError(KindConflict, "duplicate entry", err)
		case mysqlErrFKConstraint:
			return NewAppError(KindValidationFailed, "referenced record does not exist", err)
		}
	}

	return NewAppError(KindInternal, message, err)
}
