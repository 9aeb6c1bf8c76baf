package models

import "fmt"

// ErrorCode representa el código de error
type ErrorCode string

const (
	ErrorCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidValue      ErrorCode = "INVALID_VALUE_ERROR"
	ErrorCodePayoutNotEligible ErrorCode = "PAYOUT_NOT_ELIGIBLE"
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeInternal          ErrorCode = "INTERNAL"
)

// PaymentErrorMessages mapea cada código a su mensaje legible
var PaymentErrorMessages = map[ErrorCode]string{
	ErrorCodeInvalidRequest:    "Invalid request format",
	ErrorCodeInvalidValue:      "Invalid value in request",
	ErrorCodePayoutNotEligible: "Payout account is not eligible for instant payout",
	ErrorCodeNotFound:          "Resource not found",
	ErrorCodeInternal:          "Internal server error",
}

// ErrorDetail representa un detalle específico del error
type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ErrorResponse representa la respuesta de error estandarizada
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo representa la información del error
type ErrorInfo struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// BadRequestError es un error de cliente con código de taxonomía y causa original
type BadRequestError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// NewBadRequestError crea un BadRequestError con el mensaje mapeado para el código
func NewBadRequestError(code ErrorCode, cause error) *BadRequestError {
	return &BadRequestError{
		Code:    code,
		Message: PaymentErrorMessages[code],
		Cause:   cause,
	}
}

// Error implementa la interfaz error
func (e *BadRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap expone la causa original
func (e *BadRequestError) Unwrap() error {
	return e.Cause
}

// Response convierte el error a la respuesta estandarizada
func (e *BadRequestError) Response() ErrorResponse {
	return NewErrorResponse(e.Code, e.Message)
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(code),
			Message: message,
		},
	}
}

// NewValidationError crea un error de validación con detalles
func NewValidationError(message string, details []ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(ErrorCodeInvalidRequest),
			Message: message,
			Details: details,
		},
	}
}

// NewNotFoundError crea un error de recurso no encontrado
func NewNotFoundError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeNotFound, message)
}

// NewInternalError crea un error interno del servidor
func NewInternalError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeInternal, message)
}
