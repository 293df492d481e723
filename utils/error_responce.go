package utils

// ErrorResponse is the error body shape shared by all handlers
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
