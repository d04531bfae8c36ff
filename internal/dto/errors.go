package dto

// FieldError describes one invalid field of a request body
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
