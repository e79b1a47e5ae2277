package models

// ValidationResult is the outcome of a single input validation.
// Message is always set when IsValid is false.
type ValidationResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}
