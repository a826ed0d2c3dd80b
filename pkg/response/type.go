package response

// Resp is the standard JSON response body for system routes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong. Please try again later."
)
