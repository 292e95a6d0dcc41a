package errors

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse renders an AppError for the client.
func NewErrorResponse(appErr AppError) ErrorResponse {
	return ErrorResponse{Error: appErr.Message()}
}
