package common

// Header names attached to every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// Keys of the persisted client state.
const (
	MetaKeyToken  = "token"
	MetaKeyUserID = "user_id"
	MetaKeyTheme  = "theme"
)
