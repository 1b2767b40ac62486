package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel error kinds. Callers classify failures with errors.Is against these;
// the HTTP boundary maps each kind to a status code exactly once.
var (
	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate indicates an attempt to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrSameCurrency indicates a conversion request between identical currencies.
	ErrSameCurrency = errors.New("same currency conversion")
)

// AppError is the application-level error type. It carries a suggested HTTP
// status code, a user-facing message and the sentinel kind it belongs to, so
// nothing above the repository layer ever sees raw driver errors.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the sentinel kind and the wrapped cause, so
// errors.Is(err, apperrors.ErrNotFound) works alongside cause inspection.
func (e *AppError) Unwrap() []error {
	chain := make([]error, 0, 2)
	if e.Kind != nil {
		chain = append(chain, e.Kind)
	}
	if e.Err != nil {
		chain = append(chain, e.Err)
	}
	return chain
}

// NewAppError creates a generic application error wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an error for rejected client input.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrValidation}
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Kind: ErrNotFound}
}

// NewConflictError creates an error for a uniqueness conflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Kind: ErrDuplicate}
}

// NewSameCurrencyError creates an error for a conversion between a currency and itself.
func NewSameCurrencyError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrSameCurrency}
}
