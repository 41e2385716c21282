package shared

// ErrorCode classifies a DomainError so HTTP handlers can pick a status
// without matching on message text.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "VALIDATION"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInternal           ErrorCode = "INTERNAL"
)

// DomainError is the error type returned by all services.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}
