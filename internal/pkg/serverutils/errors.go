package serverutils

import "github.com/gofiber/fiber/v2"

// Machine-readable reason codes for expected, recoverable failures.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeDuplicateEntry    = "DUPLICATE_ENTRY"
	CodeContestFull       = "CONTEST_FULL"
	CodeContestClosed     = "CONTEST_UNAVAILABLE"
	CodeModelInactive     = "MODEL_INACTIVE"
	CodeInvalidTarget     = "INVALID_TARGET"
	CodeEntryFailed       = "ENTRY_CREATION_FAILED"
	CodeNotFound          = "NOT_FOUND"
	CodeUpstream          = "UPSTREAM_UNAVAILABLE"
	CodeInternal          = "INTERNAL_ERROR"
)

// BusinessError is an expected business-rule violation. It maps to a 4xx
// status and carries a reason code the caller can branch on.
type BusinessError struct {
	Status  int
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NewBusinessError(status int, code, message string) *BusinessError {
	return &BusinessError{Status: status, Code: code, Message: message}
}

func ErrInsufficientFunds(message string) *BusinessError {
	return NewBusinessError(fiber.StatusPaymentRequired, CodeInsufficientFunds, message)
}

func ErrNotFound(message string) *BusinessError {
	return NewBusinessError(fiber.StatusNotFound, CodeNotFound, message)
}

func ErrValidation(message string) *BusinessError {
	return NewBusinessError(fiber.StatusBadRequest, CodeValidation, message)
}

func ErrUpstream(message string) *BusinessError {
	return NewBusinessError(fiber.StatusInternalServerError, CodeUpstream, message)
}
