package errors

import (
	"net/http"

	"tourquote/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are in Korean, the operator
// locale of the tool.
var (
	// Validation: the request never reaches the store.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력값이 올바르지 않습니다",
		"",
	)

	// Store write path: create/update/delete rejected by the store.
	ErrStoreWriteFailed = NewBaseError(
		http.StatusBadGateway,
		"STORE_WRITE_FAILED",
		"저장소 쓰기에 실패했습니다",
		"",
	)

	// Store read path: a subscription or lookup delivered an error.
	ErrStoreReadFailed = NewBaseError(
		http.StatusBadGateway,
		"STORE_READ_FAILED",
		"저장소 읽기에 실패했습니다",
		"",
	)

	// Cascade: any step failed, nothing was deleted.
	ErrCascadeDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"CASCADE_DELETE_FAILED",
		"연쇄 삭제에 실패했습니다",
		"",
	)

	ErrCascadeCapacityExceeded = NewBaseError(
		http.StatusConflict,
		"CASCADE_CAPACITY_EXCEEDED",
		"한 번에 삭제할 수 있는 문서 수를 초과했습니다",
		"",
	)

	// Catalog lookups.
	ErrCountryNotFound = NewBaseError(
		http.StatusNotFound,
		"COUNTRY_NOT_FOUND",
		"해당 국가를 찾을 수 없습니다",
		"",
	)

	ErrCityNotFound = NewBaseError(
		http.StatusNotFound,
		"CITY_NOT_FOUND",
		"해당 도시를 찾을 수 없습니다",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"해당 카테고리를 찾을 수 없습니다",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"해당 상품을 찾을 수 없습니다",
		"",
	)

	// Quote assembly.
	ErrQuoteNotFound = NewBaseError(
		http.StatusNotFound,
		"QUOTE_NOT_FOUND",
		"견적을 찾을 수 없습니다",
		"",
	)

	ErrDayNotFound = NewBaseError(
		http.StatusNotFound,
		"DAY_NOT_FOUND",
		"해당 일차를 찾을 수 없습니다",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"해당 항목을 찾을 수 없습니다",
		"",
	)

	ErrLastDayRemoval = NewBaseError(
		http.StatusConflict,
		"LAST_DAY_REMOVAL",
		"최소 한 개의 일차는 남아 있어야 합니다",
		"",
	)

	// UI gate. Not a security boundary.
	ErrGateRejected = NewBaseError(
		http.StatusForbidden,
		"GATE_REJECTED",
		"접근 암호가 올바르지 않습니다",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"시스템 내부 오류가 발생했습니다",
		"",
	)
)
