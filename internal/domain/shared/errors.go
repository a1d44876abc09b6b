package shared

import (
	"fmt"
)

// Error codes shared across all layers. The persistence gateway, the bus
// client and the RPC client each wrap their transport failures in one of
// these; only the service layer decides how a failure maps to a caller
// outcome.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION_ERROR"
	CodeBadRequest        = "BAD_REQUEST"
	CodeDatabase          = "DATABASE_ERROR"
	CodeRpc               = "RPC_ERROR"
	CodeBus               = "BUS_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
)

// DomainError is the error type that crosses layer boundaries. Code drives
// errors.Is matching, Message is safe to surface to callers, Cause keeps the
// underlying driver or transport error for logs.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches any DomainError carrying the same code, so
// errors.Is(err, shared.ErrNotFound) holds regardless of entity or cause.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors, usable as errors.Is targets.
var (
	ErrNotFound          = NewDomainError(CodeNotFound, "Resource not found")
	ErrValidation        = NewDomainError(CodeValidation, "Validation failed")
	ErrBadRequest        = NewDomainError(CodeBadRequest, "Bad request")
	ErrDatabase          = NewDomainError(CodeDatabase, "Database error")
	ErrRpc               = NewDomainError(CodeRpc, "RPC error")
	ErrBus               = NewDomainError(CodeBus, "Message bus error")
	ErrInternal          = NewDomainError(CodeInternal, "Internal error")
	ErrInsufficientStock = NewDomainError(CodeInsufficientStock, "Insufficient stock available")
)

// NewNotFound reports an absent entity, e.g. "Order with ID ... not found".
func NewNotFound(entity string, id any) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", entity, id),
	}
}

func NewValidationError(message string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: message}
}

func NewBadRequest(message string) *DomainError {
	return &DomainError{Code: CodeBadRequest, Message: message}
}

func NewDatabaseError(cause error) *DomainError {
	return &DomainError{Code: CodeDatabase, Message: "database error", Cause: cause}
}

func NewRpcError(cause error) *DomainError {
	return &DomainError{Code: CodeRpc, Message: "rpc error", Cause: cause}
}

func NewBusError(cause error) *DomainError {
	return &DomainError{Code: CodeBus, Message: "message bus error", Cause: cause}
}

func NewInternalError(cause error) *DomainError {
	return &DomainError{Code: CodeInternal, Message: "internal error", Cause: cause}
}

// NewInsufficientStock is the typed form of the zero-row conditional
// decrement: the one failure the orchestrator recovers from rather than
// propagates.
func NewInsufficientStock(productID any) *DomainError {
	return &DomainError{
		Code:    CodeInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for product %v", productID),
	}
}
