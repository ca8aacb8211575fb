package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every error a service hands back to the HTTP layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidParameter
	KindNotFound
	KindInvalidState
	KindStorage
	KindUnrecognizedEvent
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindStorage:
		return "storage_failure"
	case KindUnrecognizedEvent:
		return "unrecognized_event"
	default:
		return "internal"
	}
}

// AppError is the single error type crossing the service/controller boundary.
// Message is safe to show to clients; Err is the internal cause and is only logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func InvalidParameter(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindInvalidParameter, Message: message, Fields: fields}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func InvalidState(message string) *AppError {
	return &AppError{Kind: KindInvalidState, Message: message}
}

// StorageFailure wraps a store error; op names the failed operation for the logs.
func StorageFailure(op string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: "storage failure: " + op, Err: err}
}

func UnrecognizedEvent(event string) *AppError {
	return &AppError{
		Kind:    KindUnrecognizedEvent,
		Message: "Invalid event",
		Fields:  map[string]string{"event": fmt.Sprintf("unrecognized event %q", event)},
	}
}

// KindOf reports the kind of err, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

var (
	ErrInvalidPage          = InvalidParameter("Page number must be greater than 0", map[string]string{"page": "must be an integer >= 1"})
	ErrPageOutOfRange       = InvalidParameter("Page number is out of range", map[string]string{"page": "too large for the requested limit"})
	ErrInvalidLimit         = InvalidParameter("Limit must be between 1 and 100", map[string]string{"limit": "must be an integer between 1 and 100"})
	ErrCreatorIDRequired    = InvalidParameter("creator_id is required", map[string]string{"creator_id": "required"})
	ErrCreatorNotFound      = NotFound("Creator not found")
	ErrPayoutAccountMissing = InvalidState("Razorpay account ID is required")
	ErrNothingToSettle      = InvalidState("No unsettled tips found")
	ErrAlreadyApproved      = InvalidState("Creator is already approved")
)
