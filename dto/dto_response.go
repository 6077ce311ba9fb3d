package dto

// ErrorResponse is the body of every failed request. Error carries either a
// string or a field to messages map for validation failures.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   any    `json:"error,omitempty" swaggertype:"object"`
}

type StatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
