package response

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Error string `json:"error"`
}

const (
	MessageNotFound    = "not found"
	MessageRateLimited = "rate limit exceeded"
)
