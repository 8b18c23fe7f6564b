package constants

// Request headers and context keys
const (
	HeaderUserID     = "X-User-ID"
	HeaderRequestID  = "X-Request-ID"
	ContextUserID    = "user_id"
	ContextRequestID = "request_id"
)
