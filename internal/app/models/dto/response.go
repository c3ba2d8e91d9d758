package dto

// ErrorResponse is the uniform failure body: a single human-readable
// detail string, surfaced directly by the client.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse creates an error response with the given detail
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}
