package models

// --- Response Structs ---

// AskResponse is the body returned by GET /ask.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse defines the standard structure for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
