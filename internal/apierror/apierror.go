// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed", Fields: fields}
}

// ViolationError carries the business rule messages a service recorded
// when it refused a mutation.
type ViolationError struct {
	Detail     string   `json:"detail"`
	Violations []string `json:"violations"`
}

func NewViolations(violations []string) *ViolationError {
	return &ViolationError{Detail: "The request breaks one or more business rules", Violations: violations}
}
