// Package apierror provides the standardized error response structures for
// the API. All 4xx/5xx bodies go through this package so clients see a
// consistent envelope and internals (I/O errors, file paths) never leak.
package apierror

// APIError is the canonical error envelope for simple failures.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps the validation engine's aggregated field errors.
// Fields is keyed by base-field name, or by Propiedad id for dynamic fields.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validación", Fields: fields}
}
