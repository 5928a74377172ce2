package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string      `json:"error_code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Data       interface{} `json:"data,omitempty"` // Extra context the caller may render (e.g. a countdown)
	Err        error       `json:"-"`              // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code, so errors.Is(err, ErrAlreadyPending()) works.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsInvariant reports whether err signals a broken engine invariant (a defect,
// not a user-facing condition).
func IsInvariant(err error) bool {
	return strings.HasPrefix(CodeOf(err), "INV_")
}

// IsPolicy reports whether err is an expected, recoverable governance condition.
func IsPolicy(err error) bool {
	return strings.HasPrefix(CodeOf(err), "GOV_")
}

// ---- Governance policy / state (GOV) ----

func ErrAlreadyPending() *AppError {
	return New("GOV_001", "Health check already pending for this key", http.StatusConflict)
}

func ErrDuplicateSignature() *AppError {
	return New("GOV_002", "Signer has already signed this transaction", http.StatusConflict)
}

func ErrNoPlanFound() *AppError {
	return New("GOV_003", "No active inheritance plan", http.StatusNotFound)
}

// ErrBufferPeriodActive carries the remaining countdown so callers can display it.
func ErrBufferPeriodActive(countdown interface{}) *AppError {
	e := New("GOV_004", "Inheritance buffer period has not elapsed", http.StatusForbidden)
	e.Data = countdown
	return e
}

func ErrAlreadyExecuted() *AppError {
	return New("GOV_005", "Transaction has already been executed", http.StatusConflict)
}

func ErrNotAwaitingSignatures() *AppError {
	return New("GOV_006", "Transaction is not awaiting signatures", http.StatusConflict)
}

func ErrAlreadyCancelled() *AppError {
	return New("GOV_007", "Transaction has been cancelled", http.StatusConflict)
}

func ErrNotKeyHolder() *AppError {
	return New("GOV_008", "Member role cannot approve governed actions", http.StatusForbidden)
}

func ErrNotReadyToBroadcast() *AppError {
	return New("GOV_009", "Transaction has not reached quorum", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("GOV_010", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrPlanAlreadyActive() *AppError {
	return New("GOV_011", "An inheritance plan is already active", http.StatusConflict)
}

// Validation returns a GOV_012 validation error.
func Validation(message string) *AppError {
	return New("GOV_012", message, http.StatusBadRequest)
}

// ---- Invariant violations (INV) ----

// ErrInvariantViolation signals a state the engine must never reach. It aborts the
// operation and is surfaced as a defect.
func ErrInvariantViolation(detail string) *AppError {
	return New("INV_001", "Invariant violation: "+detail, http.StatusInternalServerError)
}

func ErrIllegalTransition(from, to string) *AppError {
	return New("INV_002", fmt.Sprintf("Illegal transition %s -> %s", from, to), http.StatusInternalServerError)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrSessionRequired() *AppError {
	return New("AUTH_005", "Authenticated member required", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrUpstreamFailure(err error) *AppError {
	return Wrap("SYS_004", "Signing layer failure", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
